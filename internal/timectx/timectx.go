// Package timectx resolves local civil time against a timezone identifier,
// with a fixed-offset degraded mode when no zone database entry is available.
package timectx

import (
	"log/slog"
	"time"

	"github.com/aikalabs/aika-go/internal/logging"
)

// fallbackOffsetHours is the fixed UTC offset used when the timezone database
// cannot resolve the requested zone. Matches Finnish standard time.
const fallbackOffsetHours = 2

// Resolver converts between local civil time and UTC for one timezone id.
type Resolver struct {
	tzID     string
	loc      *time.Location
	degraded bool
}

// strategy attempts to produce a *time.Location for a timezone id.
type strategy struct {
	name    string
	resolve func(tzID string) (*time.Location, error)
}

// resolutionStrategies is the ordered list tried by NewResolver. The zone
// database is authoritative; the fixed offset is the documented degraded mode.
var resolutionStrategies = []strategy{
	{
		name: "zone-database",
		resolve: func(tzID string) (*time.Location, error) {
			return time.LoadLocation(tzID)
		},
	},
	{
		name: "fixed-offset",
		resolve: func(tzID string) (*time.Location, error) {
			return time.FixedZone("UTC+2", fallbackOffsetHours*3600), nil
		},
	},
}

var logger *slog.Logger

func init() {
	logger = logging.ForService("timectx")
	if logger == nil {
		logger = slog.Default().With("service", "timectx")
	}
}

// NewResolver resolves the timezone id through the strategy list.
// It never fails: the final strategy is infallible.
func NewResolver(tzID string) *Resolver {
	for i, s := range resolutionStrategies {
		loc, err := s.resolve(tzID)
		if err != nil {
			logger.Warn("timezone resolution strategy failed",
				"strategy", s.name, "timezone", tzID, "error", err)
			continue
		}
		degraded := i > 0
		if degraded {
			logger.Warn("timezone database unavailable, using fixed offset",
				"timezone", tzID, "offset_hours", fallbackOffsetHours)
		}
		return &Resolver{tzID: tzID, loc: loc, degraded: degraded}
	}
	// Unreachable: the fixed-offset strategy cannot fail.
	return &Resolver{tzID: tzID, loc: time.FixedZone("UTC+2", fallbackOffsetHours*3600), degraded: true}
}

// TimezoneID returns the timezone identifier the resolver was built for.
func (r *Resolver) TimezoneID() string {
	return r.tzID
}

// Location returns the resolved *time.Location.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Degraded reports whether the resolver is in fixed-offset fallback mode.
func (r *Resolver) Degraded() bool {
	return r.degraded
}

// ToLocal converts an absolute instant to local civil time.
func (r *Resolver) ToLocal(t time.Time) time.Time {
	return t.In(r.loc)
}

// ToUTC interprets the wall-clock fields of t as local civil time and returns
// the corresponding UTC instant.
func (r *Resolver) ToUTC(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), r.loc).UTC()
}

// LocalMidnight returns the start of the local calendar day containing t.
func (r *Resolver) LocalMidnight(t time.Time) time.Time {
	lt := t.In(r.loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, r.loc)
}

// SameLocalDay reports whether two instants fall on the same local calendar date.
func (r *Resolver) SameLocalDay(a, b time.Time) bool {
	la, lb := a.In(r.loc), b.In(r.loc)
	return la.Year() == lb.Year() && la.YearDay() == lb.YearDay()
}

// FormatClock renders an instant as local "HH:MM".
func (r *Resolver) FormatClock(t time.Time) string {
	return t.In(r.loc).Format("15:04")
}
