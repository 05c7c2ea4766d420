package ephemeris

import (
	"log/slog"
	"math"
	"time"

	"github.com/sj14/astral/pkg/astral"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/aikalabs/aika-go/internal/errors"
	"github.com/aikalabs/aika-go/internal/logging"
)

var logger *slog.Logger

func init() {
	logger = logging.ForService("ephemeris")
	if logger == nil {
		logger = slog.Default().With("service", "ephemeris")
	}
}

// Calculator implements Provider using astral for solar day geometry and the
// Meeus algorithms for lunar positions. It holds no mutable state, so a single
// value may back sequential queries; concurrent searches should use separate
// values per goroutine.
type Calculator struct{}

// NewCalculator returns a ready-to-use Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

var _ Provider = (*Calculator)(nil)

func astralObserver(obs Observer) astral.Observer {
	return astral.Observer{Latitude: obs.Latitude, Longitude: obs.Longitude}
}

// ComputeBody returns the topocentric state of the Sun or Moon at an instant.
func (c *Calculator) ComputeBody(body Body, obs Observer, at time.Time) (BodyState, error) {
	switch body {
	case Sun:
		return c.sunState(obs, at), nil
	case Moon:
		return c.moonState(obs, at), nil
	default:
		return BodyState{}, errors.Newf("unknown body: %d", body).
			Component("ephemeris").
			Category(errors.CategoryValidation).
			Build()
	}
}

// sunState computes the Sun's topocentric altitude and azimuth with astral and
// its apparent equatorial coordinates with the Meeus solar theory.
func (c *Calculator) sunState(obs Observer, at time.Time) BodyState {
	o := astralObserver(obs)
	elevation := astral.Elevation(o, at, true)
	_, azimuth := astral.ZenithAndAzimuth(o, at, true)

	jde := julian.TimeToJD(at.UTC())
	ra, dec := solar.ApparentEquatorial(jde)

	return BodyState{
		Body:        Sun,
		AltitudeDeg: elevation,
		AzimuthDeg:  normalizeDeg(azimuth),
		RARad:       ra.Rad(),
		DecRad:      dec.Rad(),
	}
}

// SolarDayEvents returns the Sun's day events for the local calendar date of
// localMidnight. ErrNoDayEvents is returned when the Sun does not cross the
// horizon or the civil twilight boundary that day.
func (c *Calculator) SolarDayEvents(obs Observer, localMidnight time.Time) (SolarDayEvents, error) {
	o := astralObserver(obs)

	dawn, err := astral.Dawn(o, localMidnight, astral.DepressionCivil)
	if err != nil {
		logger.Debug("no civil dawn for date", "date", localMidnight.Format("2006-01-02"), "error", err)
		return SolarDayEvents{}, ErrNoDayEvents
	}

	sunrise, err := astral.Sunrise(o, localMidnight)
	if err != nil {
		logger.Debug("no sunrise for date", "date", localMidnight.Format("2006-01-02"), "error", err)
		return SolarDayEvents{}, ErrNoDayEvents
	}

	noon := astral.Noon(o, localMidnight)

	sunset, err := astral.Sunset(o, localMidnight)
	if err != nil {
		logger.Debug("no sunset for date", "date", localMidnight.Format("2006-01-02"), "error", err)
		return SolarDayEvents{}, ErrNoDayEvents
	}

	dusk, err := astral.Dusk(o, localMidnight, astral.DepressionCivil)
	if err != nil {
		logger.Debug("no civil dusk for date", "date", localMidnight.Format("2006-01-02"), "error", err)
		return SolarDayEvents{}, ErrNoDayEvents
	}

	return SolarDayEvents{
		Dawn:    dawn.UTC(),
		Sunrise: sunrise.UTC(),
		Noon:    noon.UTC(),
		Sunset:  sunset.UTC(),
		Dusk:    dusk.UTC(),
	}, nil
}

// TwilightWindow returns one golden- or blue-hour window for the date.
func (c *Calculator) TwilightWindow(obs Observer, localMidnight time.Time, dir SunDirection, kind TwilightKind) (Window, error) {
	o := astralObserver(obs)

	direction := astral.SunDirectionRising
	if dir == Setting {
		direction = astral.SunDirectionSetting
	}

	var start, end time.Time
	var err error
	switch kind {
	case GoldenHour:
		start, end, err = astral.GoldenHour(o, localMidnight, direction)
	case BlueHour:
		start, end, err = astral.BlueHour(o, localMidnight, direction)
	default:
		return Window{}, errors.Newf("unknown twilight kind: %d", kind).
			Component("ephemeris").
			Category(errors.CategoryValidation).
			Build()
	}
	if err != nil {
		// The Sun never crossed the requested elevation band that day.
		return Window{}, ErrWindowUnavailable
	}

	return Window{Start: start.UTC(), End: end.UTC()}, nil
}

// AngularSeparation returns the great-circle separation of two body states in
// degrees, from their equatorial coordinates.
func (c *Calculator) AngularSeparation(a, b BodyState) float64 {
	cosSep := math.Sin(a.DecRad)*math.Sin(b.DecRad) +
		math.Cos(a.DecRad)*math.Cos(b.DecRad)*math.Cos(a.RARad-b.RARad)
	// Clamp against rounding before acos.
	cosSep = math.Max(-1, math.Min(1, cosSep))
	return math.Acos(cosSep) * 180 / math.Pi
}

// normalizeDeg maps an angle to [0, 360).
func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
