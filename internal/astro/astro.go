// Package astro is the astronomical event engine: solar and lunar day
// calculators, daylight trend, twilight windows, sun countdown, and a bounded
// forward search for the next locally visible eclipse. All computations are
// synchronous pure functions of an Observer and an ephemeris Provider; the
// engine performs no network or disk access. Results carry local civil time
// resolved through the observer's timezone.
package astro

import (
	"log/slog"
	"time"

	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/logging"
	"github.com/aikalabs/aika-go/internal/timectx"
)

var logger *slog.Logger

func init() {
	logger = logging.ForService("astro")
	if logger == nil {
		logger = slog.Default().With("service", "astro")
	}
}

// Observer fixes the location and the local civil instant all calculators
// answer for. Immutable per call.
type Observer struct {
	Latitude  float64
	Longitude float64
	LocalTime time.Time
	TZ        *timectx.Resolver
}

// NewObserver builds an Observer for the given coordinates and timezone id,
// anchored at the instant now. Timezone resolution never fails; an unknown id
// puts the resolver into fixed-offset degraded mode.
func NewObserver(latitude, longitude float64, now time.Time, tzID string) Observer {
	tz := timectx.NewResolver(tzID)
	return Observer{
		Latitude:  latitude,
		Longitude: longitude,
		LocalTime: tz.ToLocal(now),
		TZ:        tz,
	}
}

func (o Observer) ephemeris() ephemeris.Observer {
	return ephemeris.Observer{Latitude: o.Latitude, Longitude: o.Longitude}
}

// localMidnight returns the start of the observer's current local calendar
// day. The value keeps the observer's location: day-scoped provider queries
// read the calendar date from its wall clock.
func (o Observer) localMidnight() time.Time {
	return o.TZ.LocalMidnight(o.LocalTime)
}

// SolarInfo is the Sun's day geometry for the observer's current date.
// Event times are local civil instants.
type SolarInfo struct {
	Dawn    time.Time
	Sunrise time.Time
	Noon    time.Time
	Sunset  time.Time
	Dusk    time.Time

	ElevationDeg float64
	AzimuthDeg   float64
}

// ChangeDirection classifies the daylight trend against yesterday.
type ChangeDirection int

const (
	Longer ChangeDirection = iota
	Shorter
	Same
)

func (d ChangeDirection) String() string {
	switch d {
	case Longer:
		return "longer"
	case Shorter:
		return "shorter"
	default:
		return "same"
	}
}

// DaylightInfo compares today's daylight duration with yesterday's.
type DaylightInfo struct {
	DaylightMinutes int
	ChangeMinutes   int // signed, today minus yesterday
	Direction       ChangeDirection
}

// LightWindow is one golden- or blue-hour interval in local civil time.
type LightWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports boundary-inclusive containment.
func (w LightWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// TwilightWindows holds the day's four photography windows. A nil window
// means the Sun never crossed that elevation band on this date.
type TwilightWindows struct {
	MorningGolden *LightWindow
	EveningGolden *LightWindow
	MorningBlue   *LightWindow
	EveningBlue   *LightWindow

	GoldenHourNow bool
	BlueHourNow   bool
}

// SunEvent names the event a countdown runs toward.
type SunEvent int

const (
	NextSunrise SunEvent = iota
	NextSunset
	// NoSunEvent marks a polar condition: the Sun neither rises nor sets
	// around the observer's current date.
	NoSunEvent
)

func (e SunEvent) String() string {
	switch e {
	case NextSunrise:
		return "sunrise"
	case NextSunset:
		return "sunset"
	default:
		return "none"
	}
}

// PolarCondition qualifies a countdown that has no next event.
type PolarCondition int

const (
	NotPolar PolarCondition = iota
	// PolarDay: the Sun is continuously above the horizon.
	PolarDay
	// PolarNight: the Sun is continuously below the horizon.
	PolarNight
)

// SunCountdown is the time remaining to the next sunrise or sunset. During
// polar day or night NextEvent is NoSunEvent and Polar names the condition;
// SunIsUp stays meaningful in every state.
type SunCountdown struct {
	NextEvent        SunEvent
	At               time.Time // local civil time, zero when NextEvent is NoSunEvent
	MinutesRemaining int
	SunIsUp          bool
	Polar            PolarCondition
}

// Growth is the lunar waxing/waning state.
type Growth int

const (
	Waxing Growth = iota
	Waning
)

func (g Growth) String() string {
	if g == Waxing {
		return "waxing"
	}
	return "waning"
}

// PhaseType names a principal lunar phase.
type PhaseType int

const (
	NewMoon PhaseType = iota
	FullMoon
)

func (p PhaseType) String() string {
	if p == NewMoon {
		return "new"
	}
	return "full"
}

// PhaseEvent is an upcoming principal phase in local civil time.
type PhaseEvent struct {
	Type PhaseType
	At   time.Time
}

// LunarInfo is the Moon's state for the observer's instant and date.
// Rise, Set and Transit are day-scoped: present only when the event falls on
// the observer's current local calendar date. SpecialPhase is set within one
// percent of new or full.
type LunarInfo struct {
	PhasePercent float64
	Growth       Growth
	AltitudeDeg  float64
	AzimuthDeg   float64

	Rise    *time.Time
	Set     *time.Time
	Transit *time.Time

	SpecialPhase   *PhaseType
	UpcomingPhases []PhaseEvent
}

// EclipseType classifies a forecast eclipse.
type EclipseType int

const (
	PartialEclipse EclipseType = iota
	TotalEclipse
)

func (t EclipseType) String() string {
	if t == TotalEclipse {
		return "total"
	}
	return "partial"
}

// EclipseEvent is one forecast eclipse; Date is the local calendar date.
type EclipseEvent struct {
	Date time.Time
	Type EclipseType
}

// EclipseForecast holds the next locally visible eclipses found within the
// search bound. A nil entry means none was found, which is not an error.
type EclipseForecast struct {
	NextSolar *EclipseEvent
	NextLunar *EclipseEvent
}

// Snapshot aggregates all six calculators. Each section is independently nil
// when its computation failed; partial failure never aborts the others.
type Snapshot struct {
	Solar     *SolarInfo
	Daylight  *DaylightInfo
	Twilight  *TwilightWindows
	Countdown *SunCountdown
	Lunar     *LunarInfo
	Eclipse   *EclipseForecast
}

// Engine runs the calculators against one ephemeris provider. An Engine is
// stateless; use one value per goroutine, matching the provider's own
// single-goroutine contract.
type Engine struct {
	provider ephemeris.Provider
}

// New returns an Engine backed by the given provider.
func New(provider ephemeris.Provider) *Engine {
	return &Engine{provider: provider}
}
