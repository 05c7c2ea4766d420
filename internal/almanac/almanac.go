// Package almanac provides calendar facts for the report: date and week
// numbers, the meteorological season, Finnish public holidays, and natural
// language time expressions.
package almanac

import "time"

// DateInfo describes where in the year the given instant falls.
type DateInfo struct {
	Weekday     time.Weekday
	Day         int
	Month       time.Month
	Year        int
	WeekNumber  int
	WeeksInYear int
	DayOfYear   int
	DaysInYear  int
	// YearComplete is the elapsed share of the year in percent,
	// including the time of day.
	YearComplete float64
}

// NewDateInfo computes the calendar facts for a local instant.
func NewDateInfo(now time.Time) DateInfo {
	year := now.Year()
	_, week := now.ISOWeek()

	daysInYear := 365
	if isLeapYear(year) {
		daysInYear = 366
	}

	// December 28 always falls in the last ISO week of its year.
	_, weeksInYear := time.Date(year, time.December, 28, 0, 0, 0, 0, now.Location()).ISOWeek()

	dayFraction := (float64(now.Hour()) + float64(now.Minute())/60) / 24
	elapsed := float64(now.YearDay()-1) + dayFraction

	return DateInfo{
		Weekday:      now.Weekday(),
		Day:          now.Day(),
		Month:        now.Month(),
		Year:         year,
		WeekNumber:   week,
		WeeksInYear:  weeksInYear,
		DayOfYear:    now.YearDay(),
		DaysInYear:   daysInYear,
		YearComplete: elapsed / float64(daysInYear) * 100,
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// Season is a meteorological season.
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

func (s Season) String() string {
	switch s {
	case Winter:
		return "winter"
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	default:
		return "unknown"
	}
}

// SeasonFor maps a month to its meteorological season, mirrored for the
// southern hemisphere.
func SeasonFor(month time.Month, latitude float64) Season {
	var s Season
	switch month {
	case time.December, time.January, time.February:
		s = Winter
	case time.March, time.April, time.May:
		s = Spring
	case time.June, time.July, time.August:
		s = Summer
	default:
		s = Autumn
	}

	if latitude < 0 {
		switch s {
		case Winter:
			return Summer
		case Spring:
			return Autumn
		case Summer:
			return Winter
		case Autumn:
			return Spring
		}
	}
	return s
}
