package astro

import (
	"math"
	"time"

	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/errors"
)

// Countdown computes the minutes to the next sunrise or sunset. Stateless,
// recomputed on every call, three branches: before today's sunrise, between
// sunrise and sunset, after sunset (which rolls over to tomorrow's sunrise).
// Polar day and night produce an explicit NoSunEvent state instead of a
// fabricated zero countdown.
func (e *Engine) Countdown(obs Observer) (SunCountdown, error) {
	now := obs.LocalTime

	events, err := e.provider.SolarDayEvents(obs.ephemeris(), obs.localMidnight())
	if err != nil {
		if errors.Is(err, ephemeris.ErrNoDayEvents) {
			return e.polarCountdown(obs)
		}
		return SunCountdown{}, errors.New(err).
			Component("astro").
			Category(errors.CategoryEphemeris).
			Context("operation", "sun_countdown").
			Build()
	}

	switch {
	case now.Before(events.Sunrise):
		return countdownTo(obs, NextSunrise, events.Sunrise), nil
	case now.Before(events.Sunset):
		return countdownTo(obs, NextSunset, events.Sunset), nil
	}

	// After sunset: roll over to tomorrow's sunrise.
	tomorrow, err := e.provider.SolarDayEvents(obs.ephemeris(), obs.localMidnight().AddDate(0, 0, 1))
	if err != nil {
		if errors.Is(err, ephemeris.ErrNoDayEvents) {
			// Transition into a polar period.
			return e.polarCountdown(obs)
		}
		return SunCountdown{}, errors.New(err).
			Component("astro").
			Category(errors.CategoryEphemeris).
			Context("operation", "sun_countdown_rollover").
			Build()
	}
	return countdownTo(obs, NextSunrise, tomorrow.Sunrise), nil
}

func countdownTo(obs Observer, event SunEvent, at time.Time) SunCountdown {
	return SunCountdown{
		NextEvent:        event,
		At:               obs.TZ.ToLocal(at),
		MinutesRemaining: int(math.Ceil(at.Sub(obs.LocalTime).Minutes())),
		SunIsUp:          event == NextSunset,
	}
}

// polarCountdown distinguishes polar day from polar night by the Sun's
// current altitude.
func (e *Engine) polarCountdown(obs Observer) (SunCountdown, error) {
	state, err := e.provider.ComputeBody(ephemeris.Sun, obs.ephemeris(), obs.LocalTime)
	if err != nil {
		return SunCountdown{}, errors.New(err).
			Component("astro").
			Category(errors.CategoryEphemeris).
			Context("operation", "sun_countdown_polar").
			Build()
	}

	if state.AltitudeDeg > 0 {
		return SunCountdown{NextEvent: NoSunEvent, SunIsUp: true, Polar: PolarDay}, nil
	}
	return SunCountdown{NextEvent: NoSunEvent, SunIsUp: false, Polar: PolarNight}, nil
}
