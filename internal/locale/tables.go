package locale

// lineTables holds the fmt templates for whole report lines.
var lineTables = map[string]map[string]string{
	"fi": {
		"intro.time":    "Kello on %s (%s), joten on %s.",
		"intro.date":    "On %s, %d. %s, %d.",
		"intro.week":    "Viikon numero on %d/%d, ja päivän numero on %d/%d.",
		"year.complete": "Vuosi on %.1f %% valmis",

		"solar.times":    "Sarastus klo %s, aurinko nousee klo %s, keskipäivä klo %s, laskee klo %s, hämärä klo %s",
		"sun.position":   "Aurinko on %.1f° korkeudella, suunta %s %s",
		"daylight":       "Valoisaa aikaa on %d h %d min, %d minuuttia %s kuin eilen",
		"daylight.same":  "Valoisaa aikaa on %d h %d min, saman verran kuin eilen",
		"countdown":      "Aurinko %s %d minuutin kuluttua (klo %s)",
		"polar.day":      "Keskiyön aurinko: aurinko ei laske tänään",
		"polar.night":    "Kaamos: aurinko ei nouse tänään",
		"twilight.morning_golden": "Aamun kultainen hetki %s–%s",
		"twilight.evening_golden": "Illan kultainen hetki %s–%s",
		"twilight.morning_blue":   "Aamun sininen hetki %s–%s",
		"twilight.evening_blue":   "Illan sininen hetki %s–%s",
		"twilight.golden_now":     "Nyt on kultainen hetki",
		"twilight.blue_now":       "Nyt on sininen hetki",

		"moon.phase":      "Kuu on %.1f%% ja se on %s",
		"moon.position":   "Kuu on %.1f° korkeudella, suunta %s %s",
		"moon.special_new":  "Tänään on uusikuu",
		"moon.special_full": "Tänään on täysikuu",
		"moon.rise":       "Kuu nousee klo %s",
		"moon.transit":    "huipussaan klo %s",
		"moon.set":        "laskee klo %s",
		"moon.next_phase": "Seuraava %s: %s klo %s",

		"eclipse.solar": "Seuraava auringonpimennys: %s (%s)",
		"eclipse.lunar": "Seuraava kuunpimennys: %s (%s)",

		"weather":             "Sää: %.1f°c, %s",
		"weather.stale":       "Sää: %.1f°c, %s (välimuistista)",
		"weather.unavailable": "Sää: ei saatavilla",
		"weather.feels_like":  "Tuntuu kuin: %.1f°c",
		"weather.humidity":    "Ilmankosteus: %d%%, ilmanpaine: %d hpa",
		"weather.wind_full":   "Tuuli: %.1f m/s %s (puuskat %.1f m/s)",
		"weather.wind":        "Tuuli: %.1f m/s %s",
		"weather.precip":      "Sateen todennäköisyys: %d%%",

		"season":  "Vuodenaika: %s",
		"holiday": "Seuraava juhlapäivä: %s (%s) on %d päivän päästä",

		"road":          "Ajokeli: %s",
		"road.reason":   "Ajokeli: %s (%s)",
		"electricity":      "Sähkön hinta nyt: %.2f c/kWh",
		"electricity.low":  "Sähkön hinta nyt: %.2f c/kWh (edullinen)",
		"electricity.high": "Sähkön hinta nyt: %.2f c/kWh (kallis)",
		"aurora.south":    "Revontuliennuste: Kp %.0f (näkyvissä Etelä-Suomessa)",
		"aurora.north":    "Revontuliennuste: Kp %.0f (näkyvissä Pohjois-Suomessa)",
		"aurora.unlikely": "Revontuliennuste: Kp %.0f (epätodennäköinen)",
		"transit.header":  "Liikenteen häiriöt:",

		"warnings.header":       "Varoitukset:",
		"warn.cold_extreme":     "Äärimmäinen kylmävaroitus: äärimmäisen vaarallisia kylmiä lämpötiloja!",
		"warn.cold_severe":      "Vaikea kylmävaroitus: hyvin kylmiä lämpötiloja, varaudu varotoimiin",
		"warn.cold":             "Kylmävaroitus: kylmiä lämpötiloja, pukeudu lämpimästi",
		"warn.wind_high":        "Kovien tuulien varoitus: voimakkaita tuulia, kiinnitä irtaimet",
		"warn.wind":             "Tuulivaroitus: kohtalaisia tuulia odotettavissa",
		"warn.precip_high":      "Suuren sateen varoitus: hyvin todennäköistä sadetta",
		"warn.precip":           "Sadetodennäköisyysvaroitus: mahdollista sadetta",
		"warn.rain":             "Sadevaroitus: sadetta odotettavissa",
		"warn.snow":             "Lumivaroitus: lumisadetta odotettavissa",
		"warn.thunderstorm":     "Ukkosvaroitus: ukkosmyrskyjä odotettavissa",
		"warn.road_poor":        "Ajokelivaroitus: huono ajokeli",
		"warn.road_very_poor":   "Ajokelivaroitus: erittäin huono ajokeli (%s)",
		"warn.electricity":      "Sähkövaroitus: kallis sähkö nyt (%.1f c/kWh)",
		"warn.electricity_very": "Sähkövaroitus: erittäin kallis sähkö nyt (%.1f c/kWh)",
	},
	"en": {
		"intro.time":    "The time is %s (%s), so it's %s.",
		"intro.date":    "It's %s, %d %s %d.",
		"intro.week":    "Week number is %d/%d, and day number is %d/%d.",
		"year.complete": "The year is %.1f %% complete",

		"solar.times":    "Dawn at %s, sunrise at %s, noon at %s, sunset at %s, dusk at %s",
		"sun.position":   "Sun is at %.1f° elevation, direction %s %s",
		"daylight":       "Daylight lasts %d h %d min, %d minutes %s than yesterday",
		"daylight.same":  "Daylight lasts %d h %d min, the same as yesterday",
		"countdown":      "The sun %s in %d minutes (at %s)",
		"polar.day":      "Midnight sun: the sun does not set today",
		"polar.night":    "Polar night: the sun does not rise today",
		"twilight.morning_golden": "Morning golden hour %s–%s",
		"twilight.evening_golden": "Evening golden hour %s–%s",
		"twilight.morning_blue":   "Morning blue hour %s–%s",
		"twilight.evening_blue":   "Evening blue hour %s–%s",
		"twilight.golden_now":     "It is golden hour now",
		"twilight.blue_now":       "It is blue hour now",

		"moon.phase":      "Moon is %.1f%% and it is %s",
		"moon.position":   "Moon is at %.1f° elevation, direction %s %s",
		"moon.special_new":  "Today is a new moon",
		"moon.special_full": "Today is a full moon",
		"moon.rise":       "Moon rises at %s",
		"moon.transit":    "peaks at %s",
		"moon.set":        "sets at %s",
		"moon.next_phase": "Next %s: %s at %s",

		"eclipse.solar": "Next solar eclipse: %s (%s)",
		"eclipse.lunar": "Next lunar eclipse: %s (%s)",

		"weather":             "Weather: %.1f°c, %s",
		"weather.stale":       "Weather: %.1f°c, %s (cached)",
		"weather.unavailable": "Weather: not available",
		"weather.feels_like":  "Feels like: %.1f°c",
		"weather.humidity":    "Humidity: %d%%, pressure: %d hpa",
		"weather.wind_full":   "Wind: %.1f m/s from %s (gusts %.1f m/s)",
		"weather.wind":        "Wind: %.1f m/s from %s",
		"weather.precip":      "Precipitation probability: %d%%",

		"season":  "Season: %s",
		"holiday": "Next holiday: %s (%s) in %d days",

		"road":          "Road conditions: %s",
		"road.reason":   "Road conditions: %s (%s)",
		"electricity":      "Electricity price now: %.2f c/kWh",
		"electricity.low":  "Electricity price now: %.2f c/kWh (cheap)",
		"electricity.high": "Electricity price now: %.2f c/kWh (expensive)",
		"aurora.south":    "Aurora forecast: Kp %.0f (visible in Southern Finland)",
		"aurora.north":    "Aurora forecast: Kp %.0f (visible in Northern Finland)",
		"aurora.unlikely": "Aurora forecast: Kp %.0f (unlikely)",
		"transit.header":  "Transport disruptions:",

		"warnings.header":       "Warnings:",
		"warn.cold_extreme":     "Extreme cold warning: extremely dangerous cold temperatures!",
		"warn.cold_severe":      "Severe cold warning: very cold temperatures, take precautions",
		"warn.cold":             "Cold warning: cold temperatures, dress warmly",
		"warn.wind_high":        "High wind warning: strong winds, secure loose objects",
		"warn.wind":             "Wind advisory: moderate winds expected",
		"warn.precip_high":      "High precipitation warning: very likely precipitation",
		"warn.precip":           "Precipitation advisory: possible precipitation",
		"warn.rain":             "Rain warning: precipitation expected",
		"warn.snow":             "Snow warning: snowfall expected",
		"warn.thunderstorm":     "Thunderstorm warning: thunderstorms expected",
		"warn.road_poor":        "Road warning: poor driving conditions",
		"warn.road_very_poor":   "Road warning: very poor driving conditions (%s)",
		"warn.electricity":      "Electricity warning: expensive now (%.1f c/kWh)",
		"warn.electricity_very": "Electricity warning: very expensive now (%.1f c/kWh)",
	},
}

// termTables holds single vocabulary words.
var termTables = map[string]map[string]string{
	"fi": {
		"symbol.clearsky":     "selkeää",
		"symbol.partlycloudy": "puolipilvistä",
		"symbol.cloudy":       "pilvistä",
		"symbol.fog":          "sumua",
		"symbol.drizzle":      "tihkusadetta",
		"symbol.rain":         "sadetta",
		"symbol.sleet":        "räntäsadetta",
		"symbol.snow":         "lumisadetta",
		"symbol.rainshowers":  "sadekuuroja",
		"symbol.snowshowers":  "lumikuuroja",
		"symbol.thunderstorm": "ukkosta",
		"symbol.unknown":      "ei saatavilla",

		"compass.N": "pohjoinen", "compass.NNE": "pohjois-koillinen",
		"compass.NE": "koillinen", "compass.ENE": "itä-koillinen",
		"compass.E": "itä", "compass.ESE": "itä-kaakko",
		"compass.SE": "kaakko", "compass.SSE": "etelä-kaakko",
		"compass.S": "etelä", "compass.SSW": "etelä-lounas",
		"compass.SW": "lounas", "compass.WSW": "länsi-lounas",
		"compass.W": "länsi", "compass.WNW": "länsi-luode",
		"compass.NW": "luode", "compass.NNW": "pohjois-luode",

		"road.NORMAL": "normaali", "road.POOR": "huono",
		"road.VERY_POOR": "erittäin huono", "road.NO_DATA": "ei tietoa",
		"roadreason.FROST": "pakkanen", "roadreason.SLUSH": "sohjo",
		"roadreason.ICE": "jää", "roadreason.ICING": "jäätäminen",
		"roadreason.SNOW": "lumi", "roadreason.WIND": "kova tuuli",
		"roadreason.STRONG_WIND": "kova tuuli", "roadreason.DRIFTING_SNOW": "pöllyävä lumi",

		"season.winter": "talvi", "season.spring": "kevät",
		"season.summer": "kesä", "season.autumn": "syksy",

		"growth.waxing": "kasvava", "growth.waning": "pienenevä",
		"phase.new": "uusikuu", "phase.full": "täysikuu",
		"eclipse.total": "täydellinen", "eclipse.partial": "osittainen",
		"direction.longer": "pitempi", "direction.shorter": "lyhyempi",
		"sunevent.sunrise": "nousee", "sunevent.sunset": "laskee",
		"visible": "(näkyvissä)", "below_horizon": "(horisontin alla)",

		"timeofday.night":         "iltayö",
		"timeofday.early_morning": "aamuyö",
		"timeofday.morning":       "aamu",
		"timeofday.forenoon":      "aamupäivä",
		"timeofday.noon":          "keskipäivä",
		"timeofday.afternoon":     "iltapäivä",
		"timeofday.early_evening": "varhainen ilta",
		"timeofday.late_evening":  "myöhäisilta",
	},
	"en": {
		"symbol.clearsky":     "clear sky",
		"symbol.partlycloudy": "partly cloudy",
		"symbol.cloudy":       "overcast",
		"symbol.fog":          "fog",
		"symbol.drizzle":      "drizzle",
		"symbol.rain":         "rain",
		"symbol.sleet":        "sleet",
		"symbol.snow":         "snow",
		"symbol.rainshowers":  "rain showers",
		"symbol.snowshowers":  "snow showers",
		"symbol.thunderstorm": "thunderstorm",
		"symbol.unknown":      "not available",

		"compass.N": "north", "compass.NNE": "north-northeast",
		"compass.NE": "northeast", "compass.ENE": "east-northeast",
		"compass.E": "east", "compass.ESE": "east-southeast",
		"compass.SE": "southeast", "compass.SSE": "south-southeast",
		"compass.S": "south", "compass.SSW": "south-southwest",
		"compass.SW": "southwest", "compass.WSW": "west-southwest",
		"compass.W": "west", "compass.WNW": "west-northwest",
		"compass.NW": "northwest", "compass.NNW": "north-northwest",

		"road.NORMAL": "normal", "road.POOR": "poor",
		"road.VERY_POOR": "very poor", "road.NO_DATA": "unavailable",
		"roadreason.FROST": "frost", "roadreason.SLUSH": "slush",
		"roadreason.ICE": "ice", "roadreason.ICING": "icing",
		"roadreason.SNOW": "snow", "roadreason.WIND": "high wind",
		"roadreason.STRONG_WIND": "high wind", "roadreason.DRIFTING_SNOW": "drifting snow",

		"season.winter": "winter", "season.spring": "spring",
		"season.summer": "summer", "season.autumn": "autumn",

		"growth.waxing": "waxing", "growth.waning": "waning",
		"phase.new": "new moon", "phase.full": "full moon",
		"eclipse.total": "total", "eclipse.partial": "partial",
		"direction.longer": "longer", "direction.shorter": "shorter",
		"sunevent.sunrise": "rises", "sunevent.sunset": "sets",
		"visible": "(visible)", "below_horizon": "(below horizon)",

		"timeofday.night":         "night",
		"timeofday.early_morning": "early morning",
		"timeofday.morning":       "morning",
		"timeofday.forenoon":      "forenoon",
		"timeofday.noon":          "noon",
		"timeofday.afternoon":     "afternoon",
		"timeofday.early_evening": "early evening",
		"timeofday.late_evening":  "late evening",
	},
}
