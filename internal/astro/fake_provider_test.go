package astro

import (
	"time"

	"github.com/aikalabs/aika-go/internal/ephemeris"
)

// fakeProvider is a deterministic, scriptable ephemeris for calculator tests.
// Unset hooks fall back to a plain winter day derived from the requested
// local midnight, so tests only override the behavior under test.
type fakeProvider struct {
	sun     ephemeris.BodyState
	moon    ephemeris.BodyState
	bodyErr error

	events func(midnight time.Time) (ephemeris.SolarDayEvents, error)
	window func(dir ephemeris.SunDirection, kind ephemeris.TwilightKind) (ephemeris.Window, error)

	rising  func(from time.Time) (ephemeris.RiseSetOutcome, error)
	setting func(from time.Time) (ephemeris.RiseSetOutcome, error)
	transit func(from time.Time) (ephemeris.RiseSetOutcome, error)

	nextNew  func(from time.Time) (time.Time, error)
	nextFull func(from time.Time) (time.Time, error)

	separationDeg float64

	newMoonCalls  int
	fullMoonCalls int
}

var _ ephemeris.Provider = (*fakeProvider)(nil)

func (p *fakeProvider) ComputeBody(body ephemeris.Body, _ ephemeris.Observer, _ time.Time) (ephemeris.BodyState, error) {
	if p.bodyErr != nil {
		return ephemeris.BodyState{}, p.bodyErr
	}
	if body == ephemeris.Moon {
		return p.moon, nil
	}
	return p.sun, nil
}

func (p *fakeProvider) SolarDayEvents(_ ephemeris.Observer, midnight time.Time) (ephemeris.SolarDayEvents, error) {
	if p.events != nil {
		return p.events(midnight)
	}
	return ephemeris.SolarDayEvents{
		Dawn:    midnight.Add(6 * time.Hour),
		Sunrise: midnight.Add(7 * time.Hour),
		Noon:    midnight.Add(10*time.Hour + 30*time.Minute),
		Sunset:  midnight.Add(15 * time.Hour),
		Dusk:    midnight.Add(16 * time.Hour),
	}, nil
}

func (p *fakeProvider) TwilightWindow(_ ephemeris.Observer, midnight time.Time, dir ephemeris.SunDirection, kind ephemeris.TwilightKind) (ephemeris.Window, error) {
	if p.window != nil {
		return p.window(dir, kind)
	}
	switch {
	case dir == ephemeris.Rising && kind == ephemeris.GoldenHour:
		return ephemeris.Window{Start: midnight.Add(7 * time.Hour), End: midnight.Add(8 * time.Hour)}, nil
	case dir == ephemeris.Setting && kind == ephemeris.GoldenHour:
		return ephemeris.Window{Start: midnight.Add(14 * time.Hour), End: midnight.Add(15 * time.Hour)}, nil
	case dir == ephemeris.Rising && kind == ephemeris.BlueHour:
		return ephemeris.Window{Start: midnight.Add(6*time.Hour + 30*time.Minute), End: midnight.Add(7 * time.Hour)}, nil
	default:
		return ephemeris.Window{Start: midnight.Add(15 * time.Hour), End: midnight.Add(15*time.Hour + 30*time.Minute)}, nil
	}
}

func (p *fakeProvider) NextRising(_ ephemeris.Observer, _ ephemeris.Body, from time.Time) (ephemeris.RiseSetOutcome, error) {
	if p.rising != nil {
		return p.rising(from)
	}
	return ephemeris.RiseSetOutcome{Kind: ephemeris.Found, At: from.Add(6 * time.Hour)}, nil
}

func (p *fakeProvider) NextSetting(_ ephemeris.Observer, _ ephemeris.Body, from time.Time) (ephemeris.RiseSetOutcome, error) {
	if p.setting != nil {
		return p.setting(from)
	}
	return ephemeris.RiseSetOutcome{Kind: ephemeris.Found, At: from.Add(16 * time.Hour)}, nil
}

func (p *fakeProvider) NextTransit(_ ephemeris.Observer, _ ephemeris.Body, from time.Time) (ephemeris.RiseSetOutcome, error) {
	if p.transit != nil {
		return p.transit(from)
	}
	return ephemeris.RiseSetOutcome{Kind: ephemeris.Found, At: from.Add(11 * time.Hour)}, nil
}

func (p *fakeProvider) NextNewMoon(from time.Time) (time.Time, error) {
	p.newMoonCalls++
	if p.nextNew != nil {
		return p.nextNew(from)
	}
	return from.Add(10 * 24 * time.Hour), nil
}

func (p *fakeProvider) NextFullMoon(from time.Time) (time.Time, error) {
	p.fullMoonCalls++
	if p.nextFull != nil {
		return p.nextFull(from)
	}
	return from.Add(20 * 24 * time.Hour), nil
}

func (p *fakeProvider) AngularSeparation(_, _ ephemeris.BodyState) float64 {
	return p.separationDeg
}
