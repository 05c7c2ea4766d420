// Package buildinfo carries build-time metadata injected through ldflags.
// The values are not user configurable and live outside the settings system.
package buildinfo

// Set at build time with
// -ldflags "-X .../internal/buildinfo.version=... -X .../internal/buildinfo.buildDate=...".
var (
	version   = "dev"
	buildDate = "unknown"
)

// Version returns the Git version tag the binary was built from.
func Version() string {
	return version
}

// BuildDate returns the time the binary was built.
func BuildDate() string {
	return buildDate
}
