package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aikalabs/aika-go/internal/conf"
	"github.com/aikalabs/aika-go/internal/errors"
)

const (
	OpenMeteoBaseURL      = "https://api.open-meteo.com/v1/forecast"
	openMeteoProviderName = "openmeteo"
)

// NewOpenMeteoProvider creates a new Open-Meteo provider. The API needs no
// key, which makes it the default.
func NewOpenMeteoProvider() Provider {
	return &OpenMeteoProvider{}
}

type OpenMeteoProvider struct{}

// OpenMeteoResponse mirrors the fields requested from the forecast endpoint.
type OpenMeteoResponse struct {
	Current struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		RelativeHumidity    float64 `json:"relative_humidity_2m"`
		Precipitation       float64 `json:"precipitation"`
		PressureMSL         float64 `json:"pressure_msl"`
		CloudCover          float64 `json:"cloud_cover"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		WindDirection       float64 `json:"wind_direction_10m"`
		WindGusts           float64 `json:"wind_gusts_10m"`
		WeatherCode         int     `json:"weather_code"`
	} `json:"current"`
	Hourly struct {
		PrecipitationProbability []int `json:"precipitation_probability"`
	} `json:"hourly"`
}

// FetchWeather implements the Provider interface for OpenMeteoProvider.
func (p *OpenMeteoProvider) FetchWeather(settings *conf.Settings) (*WeatherData, error) {
	apiURL := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f"+
			"&current=temperature_2m,apparent_temperature,relative_humidity_2m,precipitation,pressure_msl,cloud_cover,wind_speed_10m,wind_direction_10m,wind_gusts_10m,weather_code"+
			"&hourly=precipitation_probability&forecast_hours=1&wind_speed_unit=ms&timezone=UTC",
		OpenMeteoBaseURL,
		settings.Location.Latitude,
		settings.Location.Longitude)

	logger := weatherLogger.With("provider", openMeteoProviderName)
	logger.Info("fetching weather data", "url", apiURL)

	req, err := http.NewRequest(http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, newWeatherError(err, errors.CategoryNetwork, "create_http_request", openMeteoProviderName)
	}
	req.Header.Set("User-Agent", UserAgent)

	client := &http.Client{Timeout: RequestTimeout}

	var body []byte
	for i := 0; i < MaxRetries; i++ {
		isLastAttempt := i == MaxRetries-1

		resp, err := client.Do(req)
		if err != nil {
			logger.Warn("HTTP request failed", "attempt", i+1, "error", err)
			if isLastAttempt {
				return nil, newWeatherErrorWithRetries(err, errors.CategoryNetwork, "weather_api_request", openMeteoProviderName)
			}
			time.Sleep(RetryDelay)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			logger.Warn("received non-OK status code", "attempt", i+1, "status_code", resp.StatusCode)
			if isLastAttempt {
				return nil, newWeatherErrorWithRetries(
					fmt.Errorf("received non-OK response (%d)", resp.StatusCode),
					errors.CategoryNetwork, "weather_api_response", openMeteoProviderName)
			}
			time.Sleep(RetryDelay)
			continue
		}

		body, err = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, newWeatherError(err, errors.CategoryNetwork, "read_response_body", openMeteoProviderName)
		}
		break
	}

	var response OpenMeteoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, newWeatherError(err, errors.CategoryValidation, "unmarshal_weather_data", openMeteoProviderName)
	}

	data := mapOpenMeteoResponse(&response)
	logger.Debug("mapped API response", "time", data.Time, "temp", data.Temperature.Current)
	return data, nil
}

func mapOpenMeteoResponse(response *OpenMeteoResponse) *WeatherData {
	c := &response.Current

	// The current block reports minute-resolution UTC without a zone suffix.
	t, err := time.Parse("2006-01-02T15:04", c.Time)
	if err != nil {
		t = time.Now().UTC().Truncate(time.Minute)
	}

	probability := 0
	if len(response.Hourly.PrecipitationProbability) > 0 {
		probability = response.Hourly.PrecipitationProbability[0]
	}

	return &WeatherData{
		Time: t,
		Temperature: Temperature{
			Current:   c.Temperature,
			FeelsLike: c.ApparentTemperature,
		},
		Wind: Wind{
			Speed: c.WindSpeed,
			Deg:   int(c.WindDirection),
			Gust:  c.WindGusts,
		},
		Precipitation: Precipitation{
			Amount:      c.Precipitation,
			Probability: probability,
		},
		Clouds:   int(c.CloudCover),
		Humidity: int(c.RelativeHumidity),
		Pressure: int(c.PressureMSL),
		Symbol:   SymbolForWMOCode(c.WeatherCode),
	}
}

// SymbolForWMOCode maps a WMO weather interpretation code to the normalized
// condition key used across providers.
func SymbolForWMOCode(code int) string {
	switch {
	case code == 0:
		return "clearsky"
	case code <= 2:
		return "partlycloudy"
	case code == 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 65:
		return "rain"
	case code == 66 || code == 67:
		return "sleet"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rainshowers"
	case code == 85 || code == 86:
		return "snowshowers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
