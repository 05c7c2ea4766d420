// Package weather fetches current conditions for the report. Two providers
// are supported: Open-Meteo (no API key) and the Norwegian Meteorological
// Institute's yr.no. Fetched payloads go through the file cache so a network
// failure can fall back to the last known conditions.
package weather

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aikalabs/aika-go/internal/cache"
	"github.com/aikalabs/aika-go/internal/conf"
	"github.com/aikalabs/aika-go/internal/errors"
	"github.com/aikalabs/aika-go/internal/logging"
)

var weatherLogger *slog.Logger

func init() {
	weatherLogger = logging.ForService("weather")
	if weatherLogger == nil {
		h := slog.NewJSONHandler(io.Discard, nil)
		weatherLogger = slog.New(h).With("service", "weather")
	}
}

// Provider fetches current conditions from one backend.
type Provider interface {
	FetchWeather(settings *conf.Settings) (*WeatherData, error)
}

// WeatherData is the provider-independent view of current conditions.
// Symbol is a normalized condition key (clearsky, rain, snow, ...) that the
// locale layer translates.
type WeatherData struct {
	Time          time.Time     `json:"time"`
	Temperature   Temperature   `json:"temperature"`
	Wind          Wind          `json:"wind"`
	Precipitation Precipitation `json:"precipitation"`
	Clouds        int           `json:"clouds"`
	Humidity      int           `json:"humidity"`
	Pressure      int           `json:"pressure"`
	Symbol        string        `json:"symbol"`
	Stale         bool          `json:"-"`
}

type Temperature struct {
	Current   float64 `json:"current"`
	FeelsLike float64 `json:"feels_like"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust"`
}

type Precipitation struct {
	Amount      float64 `json:"amount"`
	Probability int     `json:"probability"`
}

// Service resolves current conditions through one provider and the cache.
type Service struct {
	provider Provider
	settings *conf.Settings
	store    *cache.Store
}

// NewService selects the provider named in the configuration.
func NewService(settings *conf.Settings, store *cache.Store) (*Service, error) {
	var provider Provider

	switch settings.Weather.Provider {
	case "yrno":
		provider = NewYrNoProvider()
	case "openmeteo":
		provider = NewOpenMeteoProvider()
	default:
		return nil, errors.New(fmt.Errorf("invalid weather provider: %s", settings.Weather.Provider)).
			Component("weather").
			Category(errors.CategoryConfiguration).
			Context("provider", settings.Weather.Provider).
			Build()
	}

	return &Service{provider: provider, settings: settings, store: store}, nil
}

// Fetch returns current conditions, preferring a fresh cache entry, then the
// provider, then a stale cache entry marked as such. Only when all three fail
// does it return an error.
func (s *Service) Fetch() (*WeatherData, error) {
	var cached WeatherData
	if s.store.Get("weather", &cached) {
		weatherLogger.Debug("weather served from cache", "time", cached.Time)
		return &cached, nil
	}

	data, err := s.provider.FetchWeather(s.settings)
	if err != nil {
		if s.store.GetStale("weather", &cached) {
			weatherLogger.Warn("weather fetch failed, serving stale cache",
				"provider", s.settings.Weather.Provider, "error", err)
			cached.Stale = true
			return &cached, nil
		}
		return nil, errors.New(err).
			Component("weather").
			Category(errors.CategoryNetwork).
			Context("operation", "fetch_weather_data").
			Context("provider", s.settings.Weather.Provider).
			Build()
	}

	if err := s.store.Put("weather", data); err != nil {
		weatherLogger.Warn("failed to cache weather data", "error", err)
	}

	weatherLogger.Info("fetched weather data",
		"provider", s.settings.Weather.Provider,
		"temp_c", data.Temperature.Current,
		"wind_mps", data.Wind.Speed,
		"symbol", data.Symbol,
	)
	return data, nil
}
