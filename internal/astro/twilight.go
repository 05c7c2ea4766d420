package astro

import (
	"time"

	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/errors"
)

// Twilight computes the day's four photography windows. Each window is
// queried independently: where the Sun never crosses the needed elevation
// band (polar summer, high latitudes) only that window is absent and the
// other three still resolve. The now-flags are derived from the computed
// windows themselves, golden hour checked before blue and morning before
// evening within each kind.
func (e *Engine) Twilight(obs Observer) (TwilightWindows, error) {
	midnight := obs.localMidnight()

	tw := TwilightWindows{
		MorningGolden: e.oneWindow(obs, midnight, ephemeris.Rising, ephemeris.GoldenHour),
		EveningGolden: e.oneWindow(obs, midnight, ephemeris.Setting, ephemeris.GoldenHour),
		MorningBlue:   e.oneWindow(obs, midnight, ephemeris.Rising, ephemeris.BlueHour),
		EveningBlue:   e.oneWindow(obs, midnight, ephemeris.Setting, ephemeris.BlueHour),
	}

	now := obs.LocalTime
	for _, w := range []*LightWindow{tw.MorningGolden, tw.EveningGolden} {
		if w != nil && w.Contains(now) {
			tw.GoldenHourNow = true
			break
		}
	}
	for _, w := range []*LightWindow{tw.MorningBlue, tw.EveningBlue} {
		if w != nil && w.Contains(now) {
			tw.BlueHourNow = true
			break
		}
	}

	return tw, nil
}

// oneWindow resolves a single twilight window, mapping both the expected
// unavailable condition and unexpected provider failures to an absent window.
func (e *Engine) oneWindow(obs Observer, midnight time.Time, dir ephemeris.SunDirection, kind ephemeris.TwilightKind) *LightWindow {
	w, err := e.provider.TwilightWindow(obs.ephemeris(), midnight, dir, kind)
	if err != nil {
		if !errors.Is(err, ephemeris.ErrWindowUnavailable) {
			logger.Warn("twilight window query failed",
				"direction", dir, "kind", kind, "error", err)
		}
		return nil
	}
	return &LightWindow{
		Start: obs.TZ.ToLocal(w.Start),
		End:   obs.TZ.ToLocal(w.End),
	}
}
