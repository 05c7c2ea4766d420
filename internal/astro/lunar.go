package astro

import (
	"math"
	"sort"
	"time"

	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/errors"
)

// growthStrategy determines waxing/waning from one field of the lunar state,
// reporting false when that field is unavailable.
type growthStrategy struct {
	name  string
	apply func(st ephemeris.BodyState) (Growth, bool)
}

// growthStrategies is the ordered degrading-precision chain: signed
// elongation first, then position in the synodic cycle, then the illuminated
// fraction alone. The last strategy cannot decline.
var growthStrategies = []growthStrategy{
	{
		name: "elongation",
		apply: func(st ephemeris.BodyState) (Growth, bool) {
			if math.IsNaN(st.ElongationDeg) {
				return Waxing, false
			}
			if st.ElongationDeg >= 0 {
				return Waxing, true
			}
			return Waning, true
		},
	},
	{
		name: "cycle-position",
		apply: func(st ephemeris.BodyState) (Growth, bool) {
			if math.IsNaN(st.CyclePosition) || st.CyclePosition < 0 || st.CyclePosition >= 1 {
				return Waxing, false
			}
			if st.CyclePosition < 0.5 {
				return Waxing, true
			}
			return Waning, true
		},
	},
	{
		name: "phase-percent",
		apply: func(st ephemeris.BodyState) (Growth, bool) {
			if st.PhasePercent < 50 {
				return Waxing, true
			}
			return Waning, true
		},
	},
}

func lunarGrowth(st ephemeris.BodyState) Growth {
	for _, s := range growthStrategies {
		if g, ok := s.apply(st); ok {
			return g
		}
	}
	return Waxing
}

// Lunar computes the Moon's state for the observer's instant: phase and
// growth, altitude and azimuth, day-scoped rise/set/transit, and the upcoming
// principal phases. Circumpolar rise/set conditions and failed phase searches
// leave fields absent; only a position query failure is an error.
func (e *Engine) Lunar(obs Observer) (LunarInfo, error) {
	state, err := e.provider.ComputeBody(ephemeris.Moon, obs.ephemeris(), obs.LocalTime)
	if err != nil {
		return LunarInfo{}, errors.New(err).
			Component("astro").
			Category(errors.CategoryEphemeris).
			Context("operation", "moon_position").
			Build()
	}

	info := LunarInfo{
		PhasePercent: state.PhasePercent,
		Growth:       lunarGrowth(state),
		AltitudeDeg:  state.AltitudeDeg,
		AzimuthDeg:   state.AzimuthDeg,
	}

	if state.PhasePercent <= 1 {
		p := NewMoon
		info.SpecialPhase = &p
	} else if state.PhasePercent >= 99 {
		p := FullMoon
		info.SpecialPhase = &p
	}

	// Rise/set searches take plain instants, not dated queries.
	midnight := obs.TZ.ToUTC(obs.localMidnight())
	info.Rise = e.dayScopedEvent(obs, midnight, "moonrise", e.provider.NextRising)
	info.Set = e.dayScopedEvent(obs, midnight, "moonset", e.provider.NextSetting)
	info.Transit = e.dayScopedEvent(obs, midnight, "moon_transit", e.provider.NextTransit)

	info.UpcomingPhases = e.upcomingPhases(obs)

	return info, nil
}

// dayScopedEvent runs one rise/set/transit search from local midnight and
// keeps the result only when it falls on the observer's current local date.
// A search that lands on tomorrow, a circumpolar condition, or a search
// failure all leave the field absent.
func (e *Engine) dayScopedEvent(obs Observer, midnight time.Time, name string,
	search func(ephemeris.Observer, ephemeris.Body, time.Time) (ephemeris.RiseSetOutcome, error)) *time.Time {

	out, err := search(obs.ephemeris(), ephemeris.Moon, midnight)
	if err != nil {
		logger.Warn("lunar event search failed", "event", name, "error", err)
		return nil
	}
	if out.Kind != ephemeris.Found {
		logger.Debug("lunar event circumpolar", "event", name, "outcome", out.Kind)
		return nil
	}
	if !obs.TZ.SameLocalDay(out.At, obs.LocalTime) {
		return nil
	}
	local := obs.TZ.ToLocal(out.At)
	return &local
}

// upcomingPhases queries the next new and full moon independently, keeps
// whichever succeed, and returns them in ascending order.
func (e *Engine) upcomingPhases(obs Observer) []PhaseEvent {
	var phases []PhaseEvent

	if at, err := e.provider.NextNewMoon(obs.LocalTime); err != nil {
		logger.Warn("next new moon search failed", "error", err)
	} else {
		phases = append(phases, PhaseEvent{Type: NewMoon, At: obs.TZ.ToLocal(at)})
	}

	if at, err := e.provider.NextFullMoon(obs.LocalTime); err != nil {
		logger.Warn("next full moon search failed", "error", err)
	} else {
		phases = append(phases, PhaseEvent{Type: FullMoon, At: obs.TZ.ToLocal(at)})
	}

	sort.Slice(phases, func(i, j int) bool { return phases[i].At.Before(phases[j].At) })
	return phases
}
