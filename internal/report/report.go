// Package report renders the daily text report. Sections are emitted in a
// fixed order and a section whose data is nil is left out silently, except
// the weather block, which reports unavailability when one was expected.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aikalabs/aika-go/internal/almanac"
	"github.com/aikalabs/aika-go/internal/astro"
	"github.com/aikalabs/aika-go/internal/finland"
	"github.com/aikalabs/aika-go/internal/locale"
	"github.com/aikalabs/aika-go/internal/timectx"
	"github.com/aikalabs/aika-go/internal/weather"
)

// Countdown lines render only when the event is this close.
const countdownThreshold = 120

// Electricity price classification, cents/kWh.
const (
	priceCheap     = 5
	priceExpensive = 15
	priceWarn      = 12
	priceWarnHigh  = 18
)

// Data is everything a report can mention. Every pointer may be nil.
type Data struct {
	Now      time.Time // local civil time
	TZ       *timectx.Resolver
	Latitude float64
	City     string
	Country  string

	Astro *astro.Snapshot
	// Weather nil with WeatherExpected set renders the unavailable line;
	// without it the weather block is skipped entirely.
	Weather         *weather.WeatherData
	WeatherExpected bool
	Electricity *finland.ElectricityPrice
	Aurora      *finland.AuroraForecast
	Road        *finland.RoadWeather
	Transit     *finland.TransitDisruptions
}

// Renderer writes reports in one language.
type Renderer struct {
	tr *locale.Translator
}

// NewRenderer returns a Renderer for the given language tag.
func NewRenderer(language string) *Renderer {
	return &Renderer{tr: locale.For(language)}
}

// Render writes the full report.
func (r *Renderer) Render(w io.Writer, data *Data) error {
	var b strings.Builder

	r.renderHeader(&b, data)
	r.renderCalendar(&b, data)
	if data.Astro != nil {
		r.renderSolar(&b, data)
		r.renderLunar(&b, data)
		r.renderEclipse(&b, data.Astro.Eclipse)
	}
	if data.Weather != nil || data.WeatherExpected {
		r.renderWeather(&b, data.Weather)
	}
	r.renderSeason(&b, data)
	r.renderFinland(&b, data)
	r.renderTransit(&b, data.Transit)
	r.renderWarnings(&b, data)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) line(b *strings.Builder, key string, args ...any) {
	fmt.Fprintf(b, r.tr.Line(key), args...)
	b.WriteByte('\n')
}

func (r *Renderer) renderHeader(b *strings.Builder, data *Data) {
	switch {
	case data.City != "" && data.Country != "":
		fmt.Fprintf(b, "%s, %s\n\n", data.City, data.Country)
	case data.City != "":
		fmt.Fprintf(b, "%s\n\n", data.City)
	}
}

func (r *Renderer) renderCalendar(b *strings.Builder, data *Data) {
	now := data.Now
	info := almanac.NewDateInfo(now)

	expression := almanac.TimeExpression(now.Hour(), now.Minute(), r.tr.Language())
	timeOfDay := r.tr.Term("timeofday." + timeOfDayKey(almanac.TimeOfDayFor(now.Hour())))
	clock := now.Format("15.04")

	r.line(b, "intro.time", expression, clock, timeOfDay)
	r.line(b, "intro.date", r.tr.Weekday(info.Weekday), info.Day, r.tr.Month(info.Month), info.Year)
	r.line(b, "intro.week", info.WeekNumber, info.WeeksInYear, info.DayOfYear, info.DaysInYear)
	r.line(b, "year.complete", info.YearComplete)
}

func timeOfDayKey(t almanac.TimeOfDay) string {
	switch t {
	case almanac.EarlyMorning:
		return "early_morning"
	case almanac.Morning:
		return "morning"
	case almanac.Forenoon:
		return "forenoon"
	case almanac.Noon:
		return "noon"
	case almanac.Afternoon:
		return "afternoon"
	case almanac.EarlyEvening:
		return "early_evening"
	case almanac.LateEvening:
		return "late_evening"
	default:
		return "night"
	}
}

func (r *Renderer) renderSolar(b *strings.Builder, data *Data) {
	snap := data.Astro
	clock := data.TZ.FormatClock

	if s := snap.Solar; s != nil {
		r.line(b, "solar.times",
			clock(s.Dawn), clock(s.Sunrise), clock(s.Noon), clock(s.Sunset), clock(s.Dusk))

		visibility := r.tr.Term("below_horizon")
		if s.ElevationDeg > 0 {
			visibility = r.tr.Term("visible")
		}
		r.line(b, "sun.position", s.ElevationDeg, r.tr.Compass(s.AzimuthDeg), visibility)
	}

	if d := snap.Daylight; d != nil {
		hours, minutes := d.DaylightMinutes/60, d.DaylightMinutes%60
		if d.Direction == astro.Same {
			r.line(b, "daylight.same", hours, minutes)
		} else {
			change := d.ChangeMinutes
			if change < 0 {
				change = -change
			}
			r.line(b, "daylight", hours, minutes, change,
				r.tr.Term("direction."+d.Direction.String()))
		}
	}

	if c := snap.Countdown; c != nil {
		switch {
		case c.Polar == astro.PolarDay:
			r.line(b, "polar.day")
		case c.Polar == astro.PolarNight:
			r.line(b, "polar.night")
		case c.MinutesRemaining <= countdownThreshold:
			r.line(b, "countdown",
				r.tr.Term("sunevent."+c.NextEvent.String()),
				c.MinutesRemaining, clock(c.At))
		}
	}

	if t := snap.Twilight; t != nil {
		r.renderTwilight(b, t, clock)
	}
}

func (r *Renderer) renderTwilight(b *strings.Builder, t *astro.TwilightWindows, clock func(time.Time) string) {
	windows := []struct {
		key string
		w   *astro.LightWindow
	}{
		{"twilight.morning_golden", t.MorningGolden},
		{"twilight.morning_blue", t.MorningBlue},
		{"twilight.evening_golden", t.EveningGolden},
		{"twilight.evening_blue", t.EveningBlue},
	}
	for _, entry := range windows {
		if entry.w != nil {
			r.line(b, entry.key, clock(entry.w.Start), clock(entry.w.End))
		}
	}
	if t.GoldenHourNow {
		r.line(b, "twilight.golden_now")
	}
	if t.BlueHourNow {
		r.line(b, "twilight.blue_now")
	}
}

func (r *Renderer) renderLunar(b *strings.Builder, data *Data) {
	l := data.Astro.Lunar
	if l == nil {
		return
	}
	clock := data.TZ.FormatClock

	r.line(b, "moon.phase", l.PhasePercent, r.tr.Term("growth."+l.Growth.String()))

	visibility := r.tr.Term("below_horizon")
	if l.AltitudeDeg > 0 {
		visibility = r.tr.Term("visible")
	}
	r.line(b, "moon.position", l.AltitudeDeg, r.tr.Compass(l.AzimuthDeg), visibility)

	if l.SpecialPhase != nil {
		if *l.SpecialPhase == astro.NewMoon {
			r.line(b, "moon.special_new")
		} else {
			r.line(b, "moon.special_full")
		}
	}

	var events []string
	if l.Rise != nil {
		events = append(events, fmt.Sprintf(r.tr.Line("moon.rise"), clock(*l.Rise)))
	}
	if l.Transit != nil {
		events = append(events, fmt.Sprintf(r.tr.Line("moon.transit"), clock(*l.Transit)))
	}
	if l.Set != nil {
		events = append(events, fmt.Sprintf(r.tr.Line("moon.set"), clock(*l.Set)))
	}
	if len(events) > 0 {
		b.WriteString(strings.Join(events, ", "))
		b.WriteByte('\n')
	}

	// UpcomingPhases instants are already local civil time.
	for _, phase := range l.UpcomingPhases {
		r.line(b, "moon.next_phase",
			r.tr.Term("phase."+phase.Type.String()),
			phase.At.Format("2.1."), clock(phase.At))
	}
}

func (r *Renderer) renderEclipse(b *strings.Builder, e *astro.EclipseForecast) {
	if e == nil {
		return
	}
	if e.NextSolar != nil {
		r.line(b, "eclipse.solar",
			e.NextSolar.Date.Format("2.1.2006"),
			r.tr.Term("eclipse."+e.NextSolar.Type.String()))
	}
	if e.NextLunar != nil {
		r.line(b, "eclipse.lunar",
			e.NextLunar.Date.Format("2.1.2006"),
			r.tr.Term("eclipse."+e.NextLunar.Type.String()))
	}
}

func (r *Renderer) renderWeather(b *strings.Builder, w *weather.WeatherData) {
	if w == nil {
		r.line(b, "weather.unavailable")
		return
	}

	description := r.tr.Term("symbol." + w.Symbol)
	if w.Stale {
		r.line(b, "weather.stale", w.Temperature.Current, description)
	} else {
		r.line(b, "weather", w.Temperature.Current, description)
	}
	r.line(b, "weather.feels_like", w.Temperature.FeelsLike)
	r.line(b, "weather.humidity", w.Humidity, w.Pressure)

	if w.Wind.Gust > 0 {
		r.line(b, "weather.wind_full", w.Wind.Speed, r.tr.Compass(float64(w.Wind.Deg)), w.Wind.Gust)
	} else {
		r.line(b, "weather.wind", w.Wind.Speed, r.tr.Compass(float64(w.Wind.Deg)))
	}
	if w.Precipitation.Probability > 0 {
		r.line(b, "weather.precip", w.Precipitation.Probability)
	}
}

func (r *Renderer) renderSeason(b *strings.Builder, data *Data) {
	season := almanac.SeasonFor(data.Now.Month(), data.Latitude)
	r.line(b, "season", r.tr.Term("season."+season.String()))

	holiday, days := almanac.NextHoliday(data.Now)
	name := holiday.NameFi
	if r.tr.Language() == "en" {
		name = holiday.NameEn
	}
	r.line(b, "holiday", name, holiday.Date.Format("2.1."), days)
}

func (r *Renderer) renderFinland(b *strings.Builder, data *Data) {
	if road := data.Road; road != nil {
		condition := r.tr.Term("road." + road.Condition)
		if road.Reason != "" {
			r.line(b, "road.reason", condition, r.tr.Term("roadreason."+road.Reason))
		} else {
			r.line(b, "road", condition)
		}
	}

	if e := data.Electricity; e != nil {
		if price := currentPrice(e); price != nil {
			switch {
			case *price < priceCheap:
				r.line(b, "electricity.low", *price)
			case *price > priceExpensive:
				r.line(b, "electricity.high", *price)
			default:
				r.line(b, "electricity", *price)
			}
		}
	}

	if a := data.Aurora; a != nil {
		switch {
		case a.Kp >= 5:
			r.line(b, "aurora.south", a.Kp)
		case a.Kp >= 3:
			r.line(b, "aurora.north", a.Kp)
		default:
			r.line(b, "aurora.unlikely", a.Kp)
		}
	}
}

// currentPrice prefers the 15-minute price over the hourly one.
func currentPrice(e *finland.ElectricityPrice) *float64 {
	if e.PriceQuarter != nil {
		return e.PriceQuarter
	}
	return e.PriceHour
}

func (r *Renderer) renderTransit(b *strings.Builder, t *finland.TransitDisruptions) {
	if t == nil || len(t.Alerts) == 0 {
		return
	}
	b.WriteByte('\n')
	r.line(b, "transit.header")
	for _, alert := range t.Alerts {
		fmt.Fprintf(b, "  - %s\n", alert.Header)
	}
}

func (r *Renderer) renderWarnings(b *strings.Builder, data *Data) {
	warnings := r.collectWarnings(data)
	if len(warnings) == 0 {
		return
	}
	b.WriteByte('\n')
	r.line(b, "warnings.header")
	for _, warning := range warnings {
		fmt.Fprintf(b, "  ! %s\n", warning)
	}
}

func (r *Renderer) collectWarnings(data *Data) []string {
	var warnings []string
	add := func(key string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(r.tr.Line(key), args...))
	}

	if w := data.Weather; w != nil {
		switch {
		case w.Temperature.Current <= -30:
			add("warn.cold_extreme")
		case w.Temperature.Current <= -20:
			add("warn.cold_severe")
		case w.Temperature.Current <= -10:
			add("warn.cold")
		}

		switch {
		case w.Wind.Speed >= 25:
			add("warn.wind_high")
		case w.Wind.Speed >= 15:
			add("warn.wind")
		}

		switch {
		case w.Precipitation.Probability >= 80:
			add("warn.precip_high")
		case w.Precipitation.Probability >= 50:
			add("warn.precip")
		}

		switch w.Symbol {
		case "drizzle", "rain", "rainshowers", "sleet":
			add("warn.rain")
		case "snow", "snowshowers":
			add("warn.snow")
		case "thunderstorm":
			add("warn.thunderstorm")
		}
	}

	if road := data.Road; road != nil {
		switch road.Condition {
		case finland.RoadConditionVeryPoor:
			reason := ""
			if road.Reason != "" {
				reason = r.tr.Term("roadreason." + road.Reason)
			}
			add("warn.road_very_poor", reason)
		case finland.RoadConditionPoor:
			add("warn.road_poor")
		}
	}

	if e := data.Electricity; e != nil {
		if price := currentPrice(e); price != nil {
			switch {
			case *price >= priceWarnHigh:
				add("warn.electricity_very", *price)
			case *price >= priceWarn:
				add("warn.electricity", *price)
			}
		}
	}

	return warnings
}
