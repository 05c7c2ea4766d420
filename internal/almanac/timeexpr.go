package almanac

import "fmt"

// TimeOfDay buckets the hour the way Finnish speech does, with a separate
// forenoon and a split evening.
type TimeOfDay int

const (
	Night TimeOfDay = iota
	EarlyMorning
	Morning
	Forenoon
	Noon
	Afternoon
	EarlyEvening
	LateEvening
)

// TimeOfDayFor maps an hour (0-23) to its bucket.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour >= 4 && hour < 6:
		return EarlyMorning
	case hour >= 6 && hour < 10:
		return Morning
	case hour >= 10 && hour < 12:
		return Forenoon
	case hour >= 12 && hour < 14:
		return Noon
	case hour >= 14 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 20:
		return EarlyEvening
	case hour >= 20:
		return LateEvening
	default:
		return Night
	}
}

var finnishHours = map[int]string{
	1: "yksi", 2: "kaksi", 3: "kolme", 4: "neljä", 5: "viisi", 6: "kuusi",
	7: "seitsemän", 8: "kahdeksan", 9: "yhdeksän", 10: "kymmenen",
	11: "yksitoista", 12: "kaksitoista",
}

func finnishHour(hour int) string {
	if word, ok := finnishHours[hour]; ok {
		return word
	}
	return fmt.Sprintf("%d", hour)
}

// TimeExpression renders a spoken-style approximation of the clock time,
// e.g. "noin puoli kaksi" or "about quarter past twelve". Minutes snap to
// the nearest quarter with a seven or eight minute tolerance on each side.
func TimeExpression(hour, minute int, language string) string {
	display := hour % 12
	if display == 0 {
		display = 12
	}
	next := (hour + 1) % 12
	if next == 0 {
		next = 12
	}

	finnish := language == "fi"
	switch {
	case minute <= 7:
		if finnish {
			return "noin " + finnishHour(display)
		}
		return fmt.Sprintf("about %d o'clock", display)
	case minute <= 22:
		if finnish {
			return "noin varttia yli " + finnishHour(display)
		}
		return fmt.Sprintf("about quarter past %d", display)
	case minute <= 37:
		// Finnish half-hour names the coming hour, English the past one.
		if finnish {
			return "noin puoli " + finnishHour(next)
		}
		return fmt.Sprintf("about half past %d", display)
	case minute <= 52:
		if finnish {
			return "noin varttia vaille " + finnishHour(next)
		}
		return fmt.Sprintf("about quarter to %d", next)
	default:
		if finnish {
			return "noin " + finnishHour(next)
		}
		return fmt.Sprintf("about %d o'clock", next)
	}
}
