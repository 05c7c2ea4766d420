// Package ephemeris supplies topocentric Sun and Moon positions, day events,
// twilight windows, and rise/set/transit searches. Solar day geometry comes
// from the astral library; lunar positions are computed with the Meeus
// algorithms. All returned instants are UTC; localization is the caller's
// responsibility.
package ephemeris

import (
	"time"

	"github.com/aikalabs/aika-go/internal/errors"
)

// Body identifies a celestial body.
type Body int

const (
	Sun Body = iota
	Moon
)

// String returns the lowercase body name.
func (b Body) String() string {
	switch b {
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	default:
		return "unknown"
	}
}

// Observer is a fixed surface location. It carries no time; instants are
// passed explicitly to each query.
type Observer struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
}

// BodyState is a topocentric snapshot of a body at one instant.
// The lunar fields are zero for the Sun.
type BodyState struct {
	Body        Body
	AltitudeDeg float64
	AzimuthDeg  float64 // from north, clockwise

	// Equatorial coordinates, used for angular separation.
	RARad  float64
	DecRad float64

	// Moon only.
	PhasePercent       float64 // illuminated fraction, 0..100
	EclipticLatRad     float64 // absolute value small only near eclipse seasons
	ElongationDeg      float64 // signed Moon-Sun ecliptic elongation, positive while waxing
	CyclePosition      float64 // 0..1 through the synodic month, 0 = new
	DistanceKm         float64
	HorizontalParallax float64 // radians
}

// SolarDayEvents are the Sun's day events for one local calendar date, as UTC
// instants.
type SolarDayEvents struct {
	Dawn    time.Time
	Sunrise time.Time
	Noon    time.Time
	Sunset  time.Time
	Dusk    time.Time
}

// Window is a closed time interval in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports boundary-inclusive containment.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// SunDirection selects the rising or setting branch of a twilight window.
type SunDirection int

const (
	Rising SunDirection = iota
	Setting
)

// TwilightKind selects the Sun elevation band of a twilight window.
type TwilightKind int

const (
	// GoldenHour is the band from 4 degrees below to 6 degrees above the horizon.
	GoldenHour TwilightKind = iota
	// BlueHour is the band from 6 to 4 degrees below the horizon.
	BlueHour
)

// OutcomeKind tags the result of a rise/set/transit search.
type OutcomeKind int

const (
	// Found means the event occurs and At is valid.
	Found OutcomeKind = iota
	// AlwaysUp means the body stays above the horizon for the whole search
	// window (circumpolar).
	AlwaysUp
	// NeverUp means the body stays below the horizon for the whole search
	// window.
	NeverUp
)

// RiseSetOutcome is the tagged result of a rise/set/transit search. Callers
// must handle all three branches; circumpolar conditions are not errors.
type RiseSetOutcome struct {
	Kind OutcomeKind
	At   time.Time // valid only when Kind == Found
}

// Sentinel errors for expected conditions.
var (
	// ErrWindowUnavailable is returned when the Sun never crosses the
	// elevation band of a requested twilight window on the given date.
	ErrWindowUnavailable = errors.Newf("twilight window unavailable").
				Component("ephemeris").
				Category(errors.CategoryNotFound).
				Build()

	// ErrNoDayEvents is returned when the Sun does not rise or set on the
	// given date (polar day or polar night).
	ErrNoDayEvents = errors.Newf("no solar day events for date").
			Component("ephemeris").
			Category(errors.CategoryNotFound).
			Build()
)

// Provider is the ephemeris capability consumed by the astronomical
// calculators. Implementations must be safe for use from a single goroutine;
// callers running concurrent searches use one Provider value per goroutine.
type Provider interface {
	// ComputeBody returns the topocentric state of a body at an instant.
	ComputeBody(body Body, obs Observer, at time.Time) (BodyState, error)

	// SolarDayEvents returns dawn, sunrise, noon, sunset and dusk for one
	// local calendar date. localMidnight must carry the observer's location;
	// the date is read from its wall clock, not from the UTC instant.
	SolarDayEvents(obs Observer, localMidnight time.Time) (SolarDayEvents, error)

	// TwilightWindow returns one golden- or blue-hour window for the date.
	// ErrWindowUnavailable is returned when the Sun never crosses the band.
	TwilightWindow(obs Observer, localMidnight time.Time, dir SunDirection, kind TwilightKind) (Window, error)

	// NextRising, NextSetting and NextTransit search forward from the given
	// instant for the next horizon crossing or meridian transit of a body.
	NextRising(obs Observer, body Body, from time.Time) (RiseSetOutcome, error)
	NextSetting(obs Observer, body Body, from time.Time) (RiseSetOutcome, error)
	NextTransit(obs Observer, body Body, from time.Time) (RiseSetOutcome, error)

	// NextNewMoon and NextFullMoon return the first lunation event strictly
	// after the given instant.
	NextNewMoon(from time.Time) (time.Time, error)
	NextFullMoon(from time.Time) (time.Time, error)

	// AngularSeparation returns the great-circle separation between two body
	// states in degrees.
	AngularSeparation(a, b BodyState) float64
}
