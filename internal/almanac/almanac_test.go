package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helsinki(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Helsinki")
	require.NoError(t, err)
	return loc
}

func TestNewDateInfo(t *testing.T) {
	now := time.Date(2026, time.January, 9, 14, 16, 0, 0, helsinki(t))
	info := NewDateInfo(now)

	assert.Equal(t, time.Friday, info.Weekday)
	assert.Equal(t, 9, info.Day)
	assert.Equal(t, 2026, info.Year)
	assert.Equal(t, 2, info.WeekNumber)
	assert.Equal(t, 53, info.WeeksInYear, "2026 has 53 ISO weeks")
	assert.Equal(t, 9, info.DayOfYear)
	assert.Equal(t, 365, info.DaysInYear)
	// Eight full days plus most of the ninth.
	assert.InDelta(t, (8+14.27/24.0)/365*100, info.YearComplete, 0.05)
}

func TestNewDateInfoLeapYear(t *testing.T) {
	info := NewDateInfo(time.Date(2028, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 366, info.DaysInYear)
	assert.Equal(t, 61, info.DayOfYear)

	info = NewDateInfo(time.Date(2100, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 365, info.DaysInYear, "century years are not leap unless divisible by 400")
}

func TestSeasonFor(t *testing.T) {
	assert.Equal(t, Winter, SeasonFor(time.January, 60.45))
	assert.Equal(t, Spring, SeasonFor(time.April, 60.45))
	assert.Equal(t, Summer, SeasonFor(time.July, 60.45))
	assert.Equal(t, Autumn, SeasonFor(time.October, 60.45))
	assert.Equal(t, Winter, SeasonFor(time.December, 60.45))

	// Southern hemisphere mirrors.
	assert.Equal(t, Summer, SeasonFor(time.January, -33.9))
	assert.Equal(t, Winter, SeasonFor(time.July, -33.9))
	assert.Equal(t, Autumn, SeasonFor(time.April, -33.9))
}

func TestEasterSunday(t *testing.T) {
	cases := map[int]time.Time{
		2024: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		2025: time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC),
		2026: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC),
		2027: time.Date(2027, time.March, 28, 0, 0, 0, 0, time.UTC),
	}
	for year, want := range cases {
		assert.Equal(t, want, EasterSunday(year, time.UTC), "easter %d", year)
	}
}

func TestHolidaysForYear2026(t *testing.T) {
	holidays := HolidaysForYear(2026, time.UTC)
	require.Len(t, holidays, 15)

	byName := map[string]time.Time{}
	for _, h := range holidays {
		byName[h.NameFi] = h.Date
	}

	assert.Equal(t, time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC), byName["Pitkäperjantai"])
	assert.Equal(t, time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC), byName["Toinen pääsiäispäivä"])
	assert.Equal(t, time.Date(2026, time.May, 14, 0, 0, 0, 0, time.UTC), byName["Helatorstai"])
	assert.Equal(t, time.Date(2026, time.May, 24, 0, 0, 0, 0, time.UTC), byName["Helluntaipäivä"])
	// June 19 2026 is a Friday, so Midsummer Eve stays on it.
	assert.Equal(t, time.Date(2026, time.June, 19, 0, 0, 0, 0, time.UTC), byName["Juhannusaatto"])
	assert.Equal(t, time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC), byName["Juhannuspäivä"])
	assert.Equal(t, time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC), byName["Pyhäinpäivä"])

	for i := 1; i < len(holidays); i++ {
		assert.False(t, holidays[i].Date.Before(holidays[i-1].Date), "holidays sorted")
	}
}

func TestNextHoliday(t *testing.T) {
	now := time.Date(2026, time.January, 9, 14, 0, 0, 0, helsinki(t))
	holiday, days := NextHoliday(now)
	assert.Equal(t, "Pitkäperjantai", holiday.NameFi)
	assert.Equal(t, 84, days)

	// On the holiday itself the countdown is zero.
	mayDay := time.Date(2026, time.May, 1, 9, 0, 0, 0, helsinki(t))
	holiday, days = NextHoliday(mayDay)
	assert.Equal(t, "Vappu", holiday.NameFi)
	assert.Equal(t, 0, days)

	// Late December rolls into next year's New Year.
	yearEnd := time.Date(2026, time.December, 27, 12, 0, 0, 0, helsinki(t))
	holiday, days = NextHoliday(yearEnd)
	assert.Equal(t, "Uudenvuodenpäivä", holiday.NameFi)
	assert.Equal(t, 5, days)
}

func TestTimeOfDayFor(t *testing.T) {
	assert.Equal(t, Night, TimeOfDayFor(2))
	assert.Equal(t, EarlyMorning, TimeOfDayFor(4))
	assert.Equal(t, Morning, TimeOfDayFor(8))
	assert.Equal(t, Forenoon, TimeOfDayFor(11))
	assert.Equal(t, Noon, TimeOfDayFor(13))
	assert.Equal(t, Afternoon, TimeOfDayFor(16))
	assert.Equal(t, EarlyEvening, TimeOfDayFor(19))
	assert.Equal(t, LateEvening, TimeOfDayFor(23))
	assert.Equal(t, Night, TimeOfDayFor(0))
}

func TestTimeExpression(t *testing.T) {
	cases := []struct {
		hour, minute int
		language     string
		want         string
	}{
		{13, 3, "fi", "noin yksi"},
		{13, 16, "fi", "noin varttia yli yksi"},
		{13, 30, "fi", "noin puoli kaksi"},
		{13, 45, "fi", "noin varttia vaille kaksi"},
		{13, 56, "fi", "noin kaksi"},
		{0, 5, "fi", "noin kaksitoista"},
		{13, 3, "en", "about 1 o'clock"},
		{13, 30, "en", "about half past 1"},
		{13, 45, "en", "about quarter to 2"},
		{11, 58, "en", "about 12 o'clock"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeExpression(tc.hour, tc.minute, tc.language),
			"%02d:%02d %s", tc.hour, tc.minute, tc.language)
	}
}
