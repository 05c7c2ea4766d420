package almanac

import (
	"math"
	"time"
)

// Holiday is one Finnish public holiday with names in both output languages.
type Holiday struct {
	Date   time.Time
	NameFi string
	NameEn string
}

// EasterSunday computes Gregorian Easter with the anonymous Gauss
// algorithm. Valid for all Gregorian years.
func EasterSunday(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// HolidaysForYear lists the Finnish public holidays of a year, sorted by
// date. Midsummer Eve and Day float to Friday and Saturday between June
// 19-25 and 20-26; All Saints' Day is the Saturday between October 31 and
// November 6.
func HolidaysForYear(year int, loc *time.Location) []Holiday {
	date := func(month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	}

	easter := EasterSunday(year, loc)
	midsummerEve := weekdayOnOrAfter(date(time.June, 19), time.Friday)
	allSaints := weekdayOnOrAfter(date(time.October, 31), time.Saturday)

	holidays := []Holiday{
		{date(time.January, 1), "Uudenvuodenpäivä", "New Year's Day"},
		{date(time.January, 6), "Loppiainen", "Epiphany"},
		{easter.AddDate(0, 0, -2), "Pitkäperjantai", "Good Friday"},
		{easter, "Pääsiäispäivä", "Easter Sunday"},
		{easter.AddDate(0, 0, 1), "Toinen pääsiäispäivä", "Easter Monday"},
		{date(time.May, 1), "Vappu", "May Day"},
		{easter.AddDate(0, 0, 39), "Helatorstai", "Ascension Day"},
		{easter.AddDate(0, 0, 49), "Helluntaipäivä", "Whit Sunday"},
		{midsummerEve, "Juhannusaatto", "Midsummer Eve"},
		{midsummerEve.AddDate(0, 0, 1), "Juhannuspäivä", "Midsummer Day"},
		{allSaints, "Pyhäinpäivä", "All Saints' Day"},
		{date(time.December, 6), "Itsenäisyyspäivä", "Independence Day"},
		{date(time.December, 24), "Jouluaatto", "Christmas Eve"},
		{date(time.December, 25), "Joulupäivä", "Christmas Day"},
		{date(time.December, 26), "Tapaninpäivä", "Boxing Day"},
	}

	sortHolidays(holidays)
	return holidays
}

func weekdayOnOrAfter(from time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, offset)
}

func sortHolidays(holidays []Holiday) {
	// Only the Easter chain can land out of order; insertion sort is
	// plenty for fifteen entries.
	for i := 1; i < len(holidays); i++ {
		for j := i; j > 0 && holidays[j].Date.Before(holidays[j-1].Date); j-- {
			holidays[j], holidays[j-1] = holidays[j-1], holidays[j]
		}
	}
}

// NextHoliday returns the first holiday on or after the given local date
// and the number of whole days until it. Today's holiday counts as zero
// days away.
func NextHoliday(now time.Time) (Holiday, int) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, year := range []int{now.Year(), now.Year() + 1} {
		for _, h := range HolidaysForYear(year, now.Location()) {
			if !h.Date.Before(today) {
				// Rounding absorbs DST-shortened or lengthened days.
				days := int(math.Round(h.Date.Sub(today).Hours() / 24))
				return h, days
			}
		}
	}
	// Unreachable: next year always has a January 1 holiday.
	return Holiday{}, 0
}
