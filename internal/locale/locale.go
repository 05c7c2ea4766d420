// Package locale holds the Finnish and English string tables for the
// report. Lookups fall back to the key itself so a missing entry renders
// as something readable instead of an empty line.
package locale

import (
	"math"
	"time"
)

// Translator resolves report strings for one language.
type Translator struct {
	language string
	lines    map[string]string
	terms    map[string]string
}

// For returns the Translator for a language tag. Unknown tags fall back
// to Finnish, which is the tool's home language.
func For(language string) *Translator {
	if language != "en" {
		language = "fi"
	}
	return &Translator{
		language: language,
		lines:    lineTables[language],
		terms:    termTables[language],
	}
}

// Language returns the resolved language tag, "fi" or "en".
func (t *Translator) Language() string {
	return t.language
}

// Line returns a fmt template for a report line.
func (t *Translator) Line(key string) string {
	if s, ok := t.lines[key]; ok {
		return s
	}
	return key
}

// Term translates a single vocabulary word: a weather symbol, compass
// point, road condition, season, or similar.
func (t *Translator) Term(key string) string {
	if s, ok := t.terms[key]; ok {
		return s
	}
	return key
}

// Weekday returns the localized lowercase weekday name.
func (t *Translator) Weekday(day time.Weekday) string {
	if t.language == "fi" {
		return finnishWeekdays[day]
	}
	return day.String()
}

// Month returns the localized month name, in the genitive case for
// Finnish date sentences ("9. tammikuuta").
func (t *Translator) Month(month time.Month) string {
	if t.language == "fi" {
		return finnishMonthsGenitive[month]
	}
	return month.String()
}

// Compass converts an azimuth to a localized 16-point compass name.
func (t *Translator) Compass(degrees float64) string {
	return t.Term("compass." + CompassPoint(degrees))
}

// CompassPoint converts an azimuth in degrees to a 16-point compass key.
func CompassPoint(degrees float64) string {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	index := int(math.Round(degrees/22.5)) % 16
	return compassPoints[index]
}

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var finnishWeekdays = map[time.Weekday]string{
	time.Monday:    "maanantai",
	time.Tuesday:   "tiistai",
	time.Wednesday: "keskiviikko",
	time.Thursday:  "torstai",
	time.Friday:    "perjantai",
	time.Saturday:  "lauantai",
	time.Sunday:    "sunnuntai",
}

var finnishMonthsGenitive = map[time.Month]string{
	time.January:   "tammikuuta",
	time.February:  "helmikuuta",
	time.March:     "maaliskuuta",
	time.April:     "huhtikuuta",
	time.May:       "toukokuuta",
	time.June:      "kesäkuuta",
	time.July:      "heinäkuuta",
	time.August:    "elokuuta",
	time.September: "syyskuuta",
	time.October:   "lokakuuta",
	time.November:  "marraskuuta",
	time.December:  "joulukuuta",
}
