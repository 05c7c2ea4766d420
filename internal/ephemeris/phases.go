package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"

	"github.com/aikalabs/aika-go/internal/errors"
)

// Mean synodic month in days, used only to step the phase search forward.
const lunationDays = 29.530588861

// NextNewMoon returns the first new moon strictly after the given instant.
func (c *Calculator) NextNewMoon(from time.Time) (time.Time, error) {
	return c.nextPhase(from, moonphase.New, "new moon")
}

// NextFullMoon returns the first full moon strictly after the given instant.
func (c *Calculator) NextFullMoon(from time.Time) (time.Time, error) {
	return c.nextPhase(from, moonphase.Full, "full moon")
}

// nextPhase evaluates the Meeus phase series at the decimal year of the start
// instant and walks forward one lunation at a time until the result lands
// after the start. The series resolves the nearest event to the given year
// fraction, so a handful of steps always suffices.
func (c *Calculator) nextPhase(from time.Time, phase func(float64) float64, name string) (time.Time, error) {
	jdFrom := julian.TimeToJD(from.UTC())
	year := decimalYear(from.UTC())

	for i := 0; i < 4; i++ {
		jde := phase(year + float64(i)*lunationDays/365.25)
		if jde > jdFrom {
			return julian.JDToTime(jde).UTC(), nil
		}
	}

	return time.Time{}, errors.Newf("no %s found after %s", name, from.Format(time.RFC3339)).
		Component("ephemeris").
		Category(errors.CategoryAstroSearch).
		Build()
}

func decimalYear(t time.Time) float64 {
	yearStart := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	nextStart := time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	frac := t.Sub(yearStart).Seconds() / nextStart.Sub(yearStart).Seconds()
	return float64(t.Year()) + frac
}
