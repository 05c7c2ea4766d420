package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Mean Sun-Earth distance, used for the lunar phase angle. The eccentricity
// of Earth's orbit shifts the illuminated fraction by well under a percent.
const sunDistanceKm = 1.495978707e8

// moonState computes the Moon's topocentric state with the Meeus lunar theory:
// geocentric ecliptic position, conversion to equatorial coordinates, hour
// angle against apparent sidereal time, and a parallax correction for the
// observer's horizon.
func (c *Calculator) moonState(obs Observer, at time.Time) BodyState {
	jde := julian.TimeToJD(at.UTC())

	lam, beta, deltaKm := moonposition.Position(jde)
	eps := nutation.MeanObliquity(jde)
	sinEps, cosEps := math.Sincos(eps.Rad())
	ra, dec := coord.EclToEq(lam, beta, sinEps, cosEps)

	latRad := obs.Latitude * math.Pi / 180
	lonRad := obs.Longitude * math.Pi / 180

	// Local hour angle from apparent Greenwich sidereal time.
	gst := sidereal.Apparent(jde).Rad()
	hourAngle := normalizeRad(gst + lonRad - ra.Rad())

	sinAlt := math.Sin(latRad)*math.Sin(dec.Rad()) +
		math.Cos(latRad)*math.Cos(dec.Rad())*math.Cos(hourAngle)
	altRad := math.Asin(math.Max(-1, math.Min(1, sinAlt)))

	// Parallax lowers the geocentric altitude for a surface observer.
	parallax := moonposition.Parallax(deltaKm)
	altRad -= parallax.Rad() * math.Cos(altRad)

	azRad := math.Atan2(math.Sin(hourAngle),
		math.Cos(hourAngle)*math.Sin(latRad)-math.Tan(dec.Rad())*math.Cos(latRad))
	azDeg := normalizeDeg(azRad*180/math.Pi + 180)

	// Phase geometry against the apparent Sun.
	sunLon := solar.ApparentLongitude(base.J2000Century(jde))
	elongRad := normalizeRad(lam.Rad() - sunLon.Rad())
	elongDeg := elongRad * 180 / math.Pi // (-180, 180], positive while waxing

	cycle := (lam.Deg() - sunLon.Deg()) / 360
	cycle -= math.Floor(cycle) // 0..1, 0 = new moon

	// Geocentric Moon-Sun elongation and phase angle (Meeus ch. 48).
	cosPsi := math.Cos(beta.Rad()) * math.Cos(lam.Rad()-sunLon.Rad())
	cosPsi = math.Max(-1, math.Min(1, cosPsi))
	psi := math.Acos(cosPsi)
	phaseAngle := math.Atan2(sunDistanceKm*math.Sin(psi), deltaKm-sunDistanceKm*math.Cos(psi))
	illuminated := (1 + math.Cos(phaseAngle)) / 2

	return BodyState{
		Body:               Moon,
		AltitudeDeg:        altRad * 180 / math.Pi,
		AzimuthDeg:         azDeg,
		RARad:              ra.Rad(),
		DecRad:             dec.Rad(),
		PhasePercent:       illuminated * 100,
		EclipticLatRad:     beta.Rad(),
		ElongationDeg:      elongDeg,
		CyclePosition:      cycle,
		DistanceKm:         deltaKm,
		HorizontalParallax: parallax.Rad(),
	}
}

// normalizeRad maps an angle to (-pi, pi].
func normalizeRad(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
