package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/aikalabs/aika-go/internal/errors"
)

// Rise/set horizon altitudes in degrees: 34 arcminutes of refraction plus the
// body's mean semidiameter. The lunar value assumes the topocentric altitude
// already carries the parallax correction.
const (
	sunHorizonDeg  = -0.833
	moonHorizonDeg = -0.583
)

// Search parameters shared by the horizon-crossing and transit searches.
const (
	searchWindow   = 25 * time.Hour
	searchStep     = 10 * time.Minute
	bisectionSteps = 24
)

func horizonFor(body Body) float64 {
	if body == Moon {
		return moonHorizonDeg
	}
	return sunHorizonDeg
}

// altitudeAbove returns the body's altitude minus the rise/set horizon.
func (c *Calculator) altitudeAbove(body Body, obs Observer, t time.Time) float64 {
	var alt float64
	switch body {
	case Moon:
		alt = c.moonState(obs, t).AltitudeDeg
	default:
		alt = c.sunState(obs, t).AltitudeDeg
	}
	return alt - horizonFor(body)
}

// NextRising searches forward from the given instant for the next rising of
// the body. A circumpolar condition yields AlwaysUp or NeverUp, not an error.
func (c *Calculator) NextRising(obs Observer, body Body, from time.Time) (RiseSetOutcome, error) {
	return c.findCrossing(obs, body, from, true)
}

// NextSetting searches forward from the given instant for the next setting of
// the body.
func (c *Calculator) NextSetting(obs Observer, body Body, from time.Time) (RiseSetOutcome, error) {
	return c.findCrossing(obs, body, from, false)
}

// findCrossing samples the altitude across the search window and bisects the
// first sign change in the requested direction.
func (c *Calculator) findCrossing(obs Observer, body Body, from time.Time, upward bool) (RiseSetOutcome, error) {
	prev := c.altitudeAbove(body, obs, from)
	allAbove := prev > 0
	allBelow := prev <= 0

	for t := from.Add(searchStep); !t.After(from.Add(searchWindow)); t = t.Add(searchStep) {
		cur := c.altitudeAbove(body, obs, t)
		if cur > 0 {
			allBelow = false
		} else {
			allAbove = false
		}

		crossed := (upward && prev <= 0 && cur > 0) || (!upward && prev > 0 && cur <= 0)
		if crossed {
			at := c.bisectCrossing(obs, body, t.Add(-searchStep), t, upward)
			return RiseSetOutcome{Kind: Found, At: at.UTC()}, nil
		}
		prev = cur
	}

	if allAbove {
		return RiseSetOutcome{Kind: AlwaysUp}, nil
	}
	if allBelow {
		return RiseSetOutcome{Kind: NeverUp}, nil
	}
	// Mixed altitudes but no crossing in the requested direction within the
	// window; treat like the dominant end state.
	if c.altitudeAbove(body, obs, from.Add(searchWindow)) > 0 {
		return RiseSetOutcome{Kind: AlwaysUp}, nil
	}
	return RiseSetOutcome{Kind: NeverUp}, nil
}

// bisectCrossing narrows a horizon crossing bracketed by [lo, hi].
func (c *Calculator) bisectCrossing(obs Observer, body Body, lo, hi time.Time, upward bool) time.Time {
	for step := 0; step < bisectionSteps; step++ {
		mid := lo.Add(hi.Sub(lo) / 2)
		v := c.altitudeAbove(body, obs, mid)
		above := v > 0
		if above == upward {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo.Add(hi.Sub(lo) / 2)
}

// NextTransit searches forward for the body's next meridian transit: the
// instant its local hour angle crosses zero.
func (c *Calculator) NextTransit(obs Observer, body Body, from time.Time) (RiseSetOutcome, error) {
	prev := c.hourAngle(body, obs, from)

	for t := from.Add(searchStep); !t.After(from.Add(searchWindow)); t = t.Add(searchStep) {
		cur := c.hourAngle(body, obs, t)
		// Upward zero crossing, ignoring the +/-pi wrap.
		if prev < 0 && cur >= 0 && cur-prev < math.Pi {
			lo, hi := t.Add(-searchStep), t
			for step := 0; step < bisectionSteps; step++ {
				mid := lo.Add(hi.Sub(lo) / 2)
				if c.hourAngle(body, obs, mid) >= 0 {
					hi = mid
				} else {
					lo = mid
				}
			}
			return RiseSetOutcome{Kind: Found, At: lo.Add(hi.Sub(lo) / 2).UTC()}, nil
		}
		prev = cur
	}

	// The Moon transits roughly every 24.8 hours, the Sun every 24; the
	// window above always brackets one. Reaching this is a computation bug.
	return RiseSetOutcome{}, errors.Newf("no meridian transit found for %s within %s", body, searchWindow).
		Component("ephemeris").
		Category(errors.CategoryAstroSearch).
		Context("body", body.String()).
		Build()
}

// hourAngle returns the body's local hour angle at t, in (-pi, pi].
func (c *Calculator) hourAngle(body Body, obs Observer, t time.Time) float64 {
	var st BodyState
	switch body {
	case Moon:
		st = c.moonState(obs, t)
	default:
		st = c.sunState(obs, t)
	}
	gst := sidereal.Apparent(julian.TimeToJD(t.UTC())).Rad()
	return normalizeRad(gst + obs.Longitude*math.Pi/180 - st.RARad)
}
