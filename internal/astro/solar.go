package astro

import (
	"math"
	"time"

	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/errors"
)

// Solar returns the Sun's day events for the observer's current date together
// with its elevation and azimuth at the observer's instant. Provider failure
// propagates; the snapshot layer degrades by omitting the section.
func (e *Engine) Solar(obs Observer) (SolarInfo, error) {
	events, err := e.provider.SolarDayEvents(obs.ephemeris(), obs.localMidnight())
	if err != nil {
		return SolarInfo{}, errors.New(err).
			Component("astro").
			Category(errors.CategoryEphemeris).
			Context("operation", "solar_day_events").
			Build()
	}

	state, err := e.provider.ComputeBody(ephemeris.Sun, obs.ephemeris(), obs.LocalTime)
	if err != nil {
		return SolarInfo{}, errors.New(err).
			Component("astro").
			Category(errors.CategoryEphemeris).
			Context("operation", "sun_position").
			Build()
	}

	return SolarInfo{
		Dawn:         obs.TZ.ToLocal(events.Dawn),
		Sunrise:      obs.TZ.ToLocal(events.Sunrise),
		Noon:         obs.TZ.ToLocal(events.Noon),
		Sunset:       obs.TZ.ToLocal(events.Sunset),
		Dusk:         obs.TZ.ToLocal(events.Dusk),
		ElevationDeg: state.AltitudeDeg,
		AzimuthDeg:   state.AzimuthDeg,
	}, nil
}

// Daylight compares today's daylight duration with yesterday's.
func (e *Engine) Daylight(obs Observer) (DaylightInfo, error) {
	today, err := e.dayMinutes(obs, obs.localMidnight())
	if err != nil {
		return DaylightInfo{}, err
	}
	yesterday, err := e.dayMinutes(obs, obs.localMidnight().AddDate(0, 0, -1))
	if err != nil {
		return DaylightInfo{}, err
	}

	change := today - yesterday
	direction := Same
	switch {
	case change > 0:
		direction = Longer
	case change < 0:
		direction = Shorter
	}

	return DaylightInfo{
		DaylightMinutes: today,
		ChangeMinutes:   change,
		Direction:       direction,
	}, nil
}

func (e *Engine) dayMinutes(obs Observer, midnight time.Time) (int, error) {
	events, err := e.provider.SolarDayEvents(obs.ephemeris(), midnight)
	if err != nil {
		return 0, errors.New(err).
			Component("astro").
			Category(errors.CategoryEphemeris).
			Context("operation", "daylight_minutes").
			Context("date", midnight.Format("2006-01-02")).
			Build()
	}
	return int(math.Round(events.Sunset.Sub(events.Sunrise).Minutes())), nil
}
