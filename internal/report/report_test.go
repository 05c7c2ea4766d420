package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikalabs/aika-go/internal/astro"
	"github.com/aikalabs/aika-go/internal/finland"
	"github.com/aikalabs/aika-go/internal/timectx"
	"github.com/aikalabs/aika-go/internal/weather"
)

func testData(t *testing.T) *Data {
	t.Helper()
	tz := timectx.NewResolver("Europe/Helsinki")
	now := tz.ToLocal(time.Date(2026, time.January, 9, 12, 16, 0, 0, time.UTC))

	local := func(h, m int) time.Time {
		return time.Date(2026, time.January, 9, h, m, 0, 0, tz.Location())
	}
	rise := local(11, 2)
	transit := local(15, 30)
	waning := astro.Waning

	return &Data{
		Now:      now,
		TZ:       tz,
		Latitude: 60.4518,
		City:     "Turku",
		Country:  "Suomi",
		Astro: &astro.Snapshot{
			Solar: &astro.SolarInfo{
				Dawn: local(8, 40), Sunrise: local(9, 33), Noon: local(12, 32),
				Sunset: local(15, 32), Dusk: local(16, 25),
				ElevationDeg: 5.3, AzimuthDeg: 202.7,
			},
			Daylight: &astro.DaylightInfo{
				DaylightMinutes: 359, ChangeMinutes: 3, Direction: astro.Longer,
			},
			Twilight: &astro.TwilightWindows{
				MorningGolden: &astro.LightWindow{Start: local(9, 33), End: local(10, 45)},
				GoldenHourNow: true,
			},
			Countdown: &astro.SunCountdown{
				NextEvent: astro.NextSunset, At: local(15, 32),
				MinutesRemaining: 76, SunIsUp: true,
			},
			Lunar: &astro.LunarInfo{
				PhasePercent: 61.3, Growth: waning,
				AltitudeDeg: -23.7, AzimuthDeg: 304.6,
				Rise: &rise, Transit: &transit,
				UpcomingPhases: []astro.PhaseEvent{
					{Type: astro.NewMoon, At: time.Date(2026, time.January, 18, 21, 51, 0, 0, tz.Location())},
				},
			},
			Eclipse: &astro.EclipseForecast{
				NextLunar: &astro.EclipseEvent{
					Date: time.Date(2026, time.March, 3, 0, 0, 0, 0, tz.Location()),
					Type: astro.TotalEclipse,
				},
			},
		},
		WeatherExpected: true,
		Weather: &weather.WeatherData{
			Temperature:   weather.Temperature{Current: -7.4, FeelsLike: -12.1},
			Wind:          weather.Wind{Speed: 3.4, Deg: 220, Gust: 5.8},
			Precipitation: weather.Precipitation{Probability: 55},
			Humidity:      88,
			Pressure:      1013,
			Symbol:        "snow",
		},
	}
}

func render(t *testing.T, language string, data *Data) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, NewRenderer(language).Render(&sb, data))
	return sb.String()
}

func TestRenderFinnishFullReport(t *testing.T) {
	out := render(t, "fi", testData(t))

	assert.Contains(t, out, "Turku, Suomi")
	assert.Contains(t, out, "Kello on noin varttia yli kaksi (14.16), joten on iltapäivä.")
	assert.Contains(t, out, "On perjantai, 9. tammikuuta, 2026.")
	assert.Contains(t, out, "Viikon numero on 2/53, ja päivän numero on 9/365.")
	assert.Contains(t, out, "Sarastus klo 08:40, aurinko nousee klo 09:33")
	assert.Contains(t, out, "Aurinko on 5.3° korkeudella, suunta etelä-lounas (näkyvissä)")
	assert.Contains(t, out, "Valoisaa aikaa on 5 h 59 min, 3 minuuttia pitempi kuin eilen")
	assert.Contains(t, out, "Aurinko laskee 76 minuutin kuluttua (klo 15:32)")
	assert.Contains(t, out, "Aamun kultainen hetki 09:33–10:45")
	assert.Contains(t, out, "Nyt on kultainen hetki")
	assert.Contains(t, out, "Kuu on 61.3% ja se on pienenevä")
	assert.Contains(t, out, "Kuu on -23.7° korkeudella, suunta luode (horisontin alla)")
	assert.Contains(t, out, "Kuu nousee klo 11:02, huipussaan klo 15:30")
	assert.Contains(t, out, "Seuraava uusikuu: 18.1. klo 21:51")
	assert.Contains(t, out, "Seuraava kuunpimennys: 3.3.2026 (täydellinen)")
	assert.Contains(t, out, "Sää: -7.4°c, lumisadetta")
	assert.Contains(t, out, "Tuntuu kuin: -12.1°c")
	assert.Contains(t, out, "Ilmankosteus: 88%, ilmanpaine: 1013 hpa")
	assert.Contains(t, out, "Tuuli: 3.4 m/s lounas (puuskat 5.8 m/s)")
	assert.Contains(t, out, "Sateen todennäköisyys: 55%")
	assert.Contains(t, out, "Vuodenaika: talvi")
	assert.Contains(t, out, "Seuraava juhlapäivä: Pitkäperjantai (3.4.) on 84 päivän päästä")
	assert.Contains(t, out, "Varoitukset:")
	assert.Contains(t, out, "Lumivaroitus: lumisadetta odotettavissa")
	assert.Contains(t, out, "Sadetodennäköisyysvaroitus: mahdollista sadetta")
}

func TestRenderEnglish(t *testing.T) {
	out := render(t, "en", testData(t))

	assert.Contains(t, out, "The time is about quarter past 2 (14.16), so it's afternoon.")
	assert.Contains(t, out, "It's Friday, 9 January 2026.")
	assert.Contains(t, out, "Moon is 61.3% and it is waning")
	assert.Contains(t, out, "Next lunar eclipse: 3.3.2026 (total)")
	assert.Contains(t, out, "Weather: -7.4°c, snow")
	assert.Contains(t, out, "Next holiday: Good Friday (3.4.) in 84 days")
	assert.Contains(t, out, "Snow warning: snowfall expected")
}

func TestRenderOmitsNilSections(t *testing.T) {
	data := testData(t)
	data.Astro.Lunar = nil
	data.Astro.Eclipse = nil
	data.Weather = nil
	data.City = ""
	data.Country = ""

	out := render(t, "fi", data)

	assert.NotContains(t, out, "Kuu")
	assert.NotContains(t, out, "pimennys")
	assert.Contains(t, out, "Sää: ei saatavilla")
	assert.NotContains(t, out, "Turku")
	assert.NotContains(t, out, "Varoitukset")
}

func TestRenderCountdownOnlyWhenClose(t *testing.T) {
	data := testData(t)
	data.Astro.Countdown.MinutesRemaining = 300

	out := render(t, "fi", data)
	assert.NotContains(t, out, "minuutin kuluttua")
}

func TestRenderPolarNight(t *testing.T) {
	data := testData(t)
	data.Astro.Solar = nil
	data.Astro.Countdown = &astro.SunCountdown{
		NextEvent: astro.NoSunEvent,
		Polar:     astro.PolarNight,
	}

	out := render(t, "fi", data)
	assert.Contains(t, out, "Kaamos: aurinko ei nouse tänään")
}

func TestRenderFinlandSections(t *testing.T) {
	data := testData(t)
	quarter := 17.25
	data.Electricity = &finland.ElectricityPrice{PriceQuarter: &quarter}
	data.Aurora = &finland.AuroraForecast{Kp: 5.67}
	data.Road = &finland.RoadWeather{Condition: finland.RoadConditionVeryPoor, Reason: "ICING"}
	data.Transit = &finland.TransitDisruptions{Alerts: []finland.TransitAlert{
		{Header: "Linja 32 poikkeusreitillä", Severity: "WARNING"},
	}}

	out := render(t, "fi", data)

	assert.Contains(t, out, "Ajokeli: erittäin huono (jäätäminen)")
	assert.Contains(t, out, "Sähkön hinta nyt: 17.25 c/kWh (kallis)")
	assert.Contains(t, out, "Revontuliennuste: Kp 6 (näkyvissä Etelä-Suomessa)")
	assert.Contains(t, out, "Liikenteen häiriöt:")
	assert.Contains(t, out, "  - Linja 32 poikkeusreitillä")
	assert.Contains(t, out, "Ajokelivaroitus: erittäin huono ajokeli (jäätäminen)")
	assert.Contains(t, out, "Sähkövaroitus: kallis sähkö nyt (17.2 c/kWh)")
}

func TestRenderDaylightSame(t *testing.T) {
	data := testData(t)
	data.Astro.Daylight = &astro.DaylightInfo{
		DaylightMinutes: 360, ChangeMinutes: 0, Direction: astro.Same,
	}

	out := render(t, "fi", data)
	assert.Contains(t, out, "Valoisaa aikaa on 6 h 0 min, saman verran kuin eilen")
}
