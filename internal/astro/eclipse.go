package astro

import (
	"time"

	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/errors"
)

// Eclipse search bounds and visibility thresholds. The thresholds are a crude
// geometric proxy for local visibility, not shadow-path modeling; results are
// advisory.
const (
	eclipseMaxIterations = 60

	// Lunar eclipses require the full moon near the ecliptic plane.
	lunarEclipseLatRad = 0.02
	lunarTotalLatRad   = 0.008

	// Solar eclipses require a close Sun-Moon conjunction at the new moon.
	solarEclipseSepDeg = 1.5
	solarTotalSepDeg   = 0.3
)

// Eclipse runs two independent bounded searches for the next locally visible
// lunar and solar eclipse. Exhausting the iteration bound leaves that entry
// nil, which is not an error. Any provider failure aborts the whole forecast:
// both results fail together, unlike the per-field degradation used by the
// other calculators.
func (e *Engine) Eclipse(obs Observer) (EclipseForecast, error) {
	lunar, err := e.nextLunarEclipse(obs)
	if err != nil {
		return EclipseForecast{}, err
	}
	solar, err := e.nextSolarEclipse(obs)
	if err != nil {
		return EclipseForecast{}, err
	}
	return EclipseForecast{NextSolar: solar, NextLunar: lunar}, nil
}

// nextLunarEclipse walks full moons forward from the observer's instant. A
// candidate qualifies when the Moon sits within the ecliptic-latitude band
// and above the local horizon at the instant of the full moon.
func (e *Engine) nextLunarEclipse(obs Observer) (*EclipseEvent, error) {
	cursor := obs.LocalTime

	for i := 0; i < eclipseMaxIterations; i++ {
		at, err := e.provider.NextFullMoon(cursor)
		if err != nil {
			return nil, eclipseError(err, "full_moon", i)
		}

		moon, err := e.provider.ComputeBody(ephemeris.Moon, obs.ephemeris(), at)
		if err != nil {
			return nil, eclipseError(err, "moon_state", i)
		}

		lat := moon.EclipticLatRad
		if lat < 0 {
			lat = -lat
		}
		if lat < lunarEclipseLatRad && moon.AltitudeDeg > 0 {
			kind := PartialEclipse
			if lat < lunarTotalLatRad {
				kind = TotalEclipse
			}
			return &EclipseEvent{Date: obs.TZ.LocalMidnight(at), Type: kind}, nil
		}

		cursor = at.Add(24 * time.Hour)
	}

	logger.Debug("lunar eclipse search exhausted", "iterations", eclipseMaxIterations)
	return nil, nil
}

// nextSolarEclipse walks new moons forward. A candidate qualifies when the
// Sun is above the local horizon and the Sun-Moon separation is within the
// conjunction threshold.
func (e *Engine) nextSolarEclipse(obs Observer) (*EclipseEvent, error) {
	cursor := obs.LocalTime

	for i := 0; i < eclipseMaxIterations; i++ {
		at, err := e.provider.NextNewMoon(cursor)
		if err != nil {
			return nil, eclipseError(err, "new_moon", i)
		}

		sun, err := e.provider.ComputeBody(ephemeris.Sun, obs.ephemeris(), at)
		if err != nil {
			return nil, eclipseError(err, "sun_state", i)
		}
		moon, err := e.provider.ComputeBody(ephemeris.Moon, obs.ephemeris(), at)
		if err != nil {
			return nil, eclipseError(err, "moon_state", i)
		}

		sep := e.provider.AngularSeparation(sun, moon)
		if sun.AltitudeDeg > 0 && sep < solarEclipseSepDeg {
			kind := PartialEclipse
			if sep < solarTotalSepDeg {
				kind = TotalEclipse
			}
			return &EclipseEvent{Date: obs.TZ.LocalMidnight(at), Type: kind}, nil
		}

		cursor = at.Add(24 * time.Hour)
	}

	logger.Debug("solar eclipse search exhausted", "iterations", eclipseMaxIterations)
	return nil, nil
}

func eclipseError(err error, operation string, iteration int) error {
	return errors.New(err).
		Component("astro").
		Category(errors.CategoryEphemeris).
		Context("operation", "eclipse_"+operation).
		Context("iteration", iteration).
		Build()
}
