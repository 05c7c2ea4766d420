package conf

import (
	"github.com/spf13/viper"
)

// setDefaultConfig sets default values for all configuration parameters.
func setDefaultConfig() {
	viper.SetDefault("debug", false)
	viper.SetDefault("offline", false)

	viper.SetDefault("main.name", "aika-go")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "logs/aika.log")

	// Turku
	viper.SetDefault("location.latitude", 60.4518)
	viper.SetDefault("location.longitude", 22.2666)
	viper.SetDefault("location.timezone", "Europe/Helsinki")
	viper.SetDefault("location.city", "Turku")
	viper.SetDefault("location.country", "FI")

	viper.SetDefault("language", "fi")

	viper.SetDefault("weather.provider", "openmeteo")

	viper.SetDefault("finland.electricity", true)
	viper.SetDefault("finland.aurora", true)
	viper.SetDefault("finland.roadweather", true)
	viper.SetDefault("finland.transit", false)
	viper.SetDefault("finland.digitransitapikey", "")

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.dir", "temp")
}
