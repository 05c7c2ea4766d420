package conf

import (
	"fmt"

	"github.com/aikalabs/aika-go/internal/errors"
)

// validLanguages lists the report languages with full translation tables.
var validLanguages = map[string]bool{
	"fi": true,
	"en": true,
}

// validWeatherProviders lists the supported weather backends.
var validWeatherProviders = map[string]bool{
	"openmeteo": true,
	"yrno":      true,
	"none":      true,
}

// ValidateSettings checks the loaded settings for obviously invalid values.
func ValidateSettings(settings *Settings) error {
	if settings.Location.Latitude < -90 || settings.Location.Latitude > 90 {
		return errors.Newf("latitude must be between -90 and 90, got %f", settings.Location.Latitude).
			Component("conf").
			Category(errors.CategoryValidation).
			Context("latitude", fmt.Sprintf("%.4f", settings.Location.Latitude)).
			Build()
	}

	if settings.Location.Longitude < -180 || settings.Location.Longitude > 180 {
		return errors.Newf("longitude must be between -180 and 180, got %f", settings.Location.Longitude).
			Component("conf").
			Category(errors.CategoryValidation).
			Context("longitude", fmt.Sprintf("%.4f", settings.Location.Longitude)).
			Build()
	}

	if !validLanguages[settings.Language] {
		return errors.Newf("unsupported language: %s", settings.Language).
			Component("conf").
			Category(errors.CategoryValidation).
			Context("language", settings.Language).
			Build()
	}

	if !validWeatherProviders[settings.Weather.Provider] {
		return errors.Newf("invalid weather provider: %s", settings.Weather.Provider).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("provider", settings.Weather.Provider).
			Build()
	}

	return nil
}
