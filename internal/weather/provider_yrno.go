package weather

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aikalabs/aika-go/internal/conf"
	"github.com/aikalabs/aika-go/internal/errors"
)

const (
	YrNoBaseURL        = "https://api.met.no/weatherapi/locationforecast/2.0/complete"
	yrNoProviderName   = "yrno"
	maxBodyPreviewSize = 200 // Maximum characters to show in error logs
)

// ErrWeatherDataNotModified is returned when the backend reports no change
// since the last fetch; callers fall back to the cached payload.
var ErrWeatherDataNotModified = errors.Newf("weather data not modified").
	Component("weather").
	Category(errors.CategoryNotFound).
	Build()

// NewYrNoProvider creates a new Yr.no weather provider.
func NewYrNoProvider() Provider {
	return &YrNoProvider{}
}

// YrNoProvider remembers the Last-Modified header between fetches so repeated
// polls can use conditional requests, as the met.no terms of service ask.
type YrNoProvider struct {
	lastModified string
}

// YrResponse represents the structure of the Yr.no API response.
type YrResponse struct {
	Properties struct {
		Timeseries []struct {
			Time time.Time `json:"time"`
			Data struct {
				Instant struct {
					Details struct {
						AirPressure    float64 `json:"air_pressure_at_sea_level"`
						AirTemperature float64 `json:"air_temperature"`
						CloudArea      float64 `json:"cloud_area_fraction"`
						RelHumidity    float64 `json:"relative_humidity"`
						WindSpeed      float64 `json:"wind_speed"`
						WindDirection  float64 `json:"wind_from_direction"`
						WindGust       float64 `json:"wind_speed_of_gust"`
					} `json:"details"`
				} `json:"instant"`
				Next1Hours struct {
					Summary struct {
						SymbolCode string `json:"symbol_code"`
					} `json:"summary"`
					Details struct {
						PrecipitationAmount float64 `json:"precipitation_amount"`
						PrecipitationProb   float64 `json:"probability_of_precipitation"`
					} `json:"details"`
				} `json:"next_1_hours"`
			} `json:"data"`
		} `json:"timeseries"`
	} `json:"properties"`
}

// yrNoRequestResult holds the result of a single HTTP request attempt.
type yrNoRequestResult struct {
	body        []byte
	lastMod     string
	notModified bool
	shouldRetry bool
}

// FetchWeather implements the Provider interface for YrNoProvider.
func (p *YrNoProvider) FetchWeather(settings *conf.Settings) (*WeatherData, error) {
	apiURL := fmt.Sprintf("%s?lat=%.3f&lon=%.3f", YrNoBaseURL,
		settings.Location.Latitude,
		settings.Location.Longitude)

	logger := weatherLogger.With("provider", yrNoProviderName)
	logger.Info("fetching weather data", "url", apiURL)

	req, err := http.NewRequest(http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, newWeatherError(err, errors.CategoryNetwork, "create_http_request", yrNoProviderName)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept-Encoding", "gzip")
	if p.lastModified != "" {
		req.Header.Set("If-Modified-Since", p.lastModified)
	}

	body, err := p.executeWithRetry(req, logger)
	if err != nil {
		return nil, err
	}

	var response YrResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, newWeatherError(err, errors.CategoryValidation, "unmarshal_weather_data", yrNoProviderName)
	}

	if len(response.Properties.Timeseries) == 0 {
		return nil, newWeatherError(
			fmt.Errorf("no weather data available in timeseries"),
			errors.CategoryValidation,
			"validate_weather_response",
			yrNoProviderName,
		)
	}

	data := mapYrResponseToWeatherData(&response)
	logger.Debug("mapped API response", "time", data.Time, "temp", data.Temperature.Current)
	return data, nil
}

// executeWithRetry executes the HTTP request with retry logic.
func (p *YrNoProvider) executeWithRetry(req *http.Request, logger *slog.Logger) ([]byte, error) {
	client := &http.Client{Timeout: RequestTimeout}

	for i := 0; i < MaxRetries; i++ {
		isLastAttempt := i == MaxRetries-1
		attemptLogger := logger.With("attempt", i+1, "max_attempts", MaxRetries)

		resp, err := client.Do(req)
		if err != nil {
			attemptLogger.Warn("HTTP request failed", "error", err)
			if isLastAttempt {
				return nil, newWeatherErrorWithRetries(err, errors.CategoryNetwork, "weather_api_request", yrNoProviderName)
			}
			time.Sleep(RetryDelay)
			continue
		}

		attemptLogger.Debug("received HTTP response", "status_code", resp.StatusCode)
		result, err := handleYrNoResponse(resp, attemptLogger, isLastAttempt)
		if err != nil {
			return nil, err
		}

		if result.notModified {
			logger.Info("weather data not modified since last fetch", "last_modified", p.lastModified)
			return nil, ErrWeatherDataNotModified
		}

		if result.shouldRetry {
			time.Sleep(RetryDelay)
			continue
		}

		if result.lastMod != "" {
			p.lastModified = result.lastMod
		}
		return result.body, nil
	}

	return nil, newWeatherErrorWithRetries(
		fmt.Errorf("max retries exceeded"),
		errors.CategoryNetwork,
		"weather_api_request",
		yrNoProviderName,
	)
}

// handleYrNoResponse processes a single HTTP response and returns the result.
func handleYrNoResponse(resp *http.Response, logger *slog.Logger, isLastAttempt bool) (*yrNoRequestResult, error) {
	result := &yrNoRequestResult{}

	if resp.StatusCode == http.StatusNotModified {
		if err := resp.Body.Close(); err != nil {
			logger.Debug("failed to close response body", "error", err)
		}
		result.notModified = true
		return result, nil
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		if err := resp.Body.Close(); err != nil {
			logger.Debug("failed to close response body", "error", err)
		}
		logger.Warn("received non-OK status code",
			"status_code", resp.StatusCode,
			"response_body", truncateBodyPreview(string(bodyBytes)))

		if isLastAttempt {
			return nil, errors.New(fmt.Errorf("received non-OK response (%d) after %d retries", resp.StatusCode, MaxRetries)).
				Component("weather").
				Category(errors.CategoryNetwork).
				Context("operation", "weather_api_response").
				Context("provider", yrNoProviderName).
				Context("status_code", fmt.Sprintf("%d", resp.StatusCode)).
				Build()
		}
		result.shouldRetry = true
		return result, nil
	}

	result.lastMod = resp.Header.Get("Last-Modified")
	body, err := readYrNoResponseBody(resp, logger)
	if closeErr := resp.Body.Close(); closeErr != nil {
		logger.Debug("failed to close response body", "error", closeErr)
	}
	if err != nil {
		return nil, err
	}
	result.body = body
	return result, nil
}

// readYrNoResponseBody reads and optionally decompresses the response body.
func readYrNoResponseBody(resp *http.Response, logger *slog.Logger) ([]byte, error) {
	var reader io.Reader = resp.Body
	var gzReader *gzip.Reader

	if resp.Header.Get("Content-Encoding") == "gzip" {
		logger.Debug("response is gzip encoded, creating reader")
		var err error
		gzReader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, newWeatherError(err, errors.CategoryNetwork, "create_gzip_reader", yrNoProviderName)
		}
		reader = gzReader
	}

	body, err := io.ReadAll(reader)
	if gzReader != nil {
		if closeErr := gzReader.Close(); closeErr != nil {
			logger.Debug("failed to close gzip reader", "error", closeErr)
		}
	}
	if err != nil {
		return nil, newWeatherError(err, errors.CategoryNetwork, "read_response_body", yrNoProviderName)
	}

	return body, nil
}

// truncateBodyPreview truncates response body for logging.
func truncateBodyPreview(body string) string {
	if len(body) > maxBodyPreviewSize {
		return body[:maxBodyPreviewSize] + "... (truncated)"
	}
	return body
}

// mapYrResponseToWeatherData converts YrResponse to WeatherData.
func mapYrResponseToWeatherData(response *YrResponse) *WeatherData {
	current := response.Properties.Timeseries[0]
	details := current.Data.Instant.Details

	return &WeatherData{
		Time: current.Time,
		Temperature: Temperature{
			Current: details.AirTemperature,
			// yr.no carries no apparent temperature in the instant block.
			FeelsLike: details.AirTemperature,
		},
		Wind: Wind{
			Speed: details.WindSpeed,
			Deg:   int(details.WindDirection),
			Gust:  details.WindGust,
		},
		Precipitation: Precipitation{
			Amount:      current.Data.Next1Hours.Details.PrecipitationAmount,
			Probability: int(current.Data.Next1Hours.Details.PrecipitationProb),
		},
		Clouds:   int(details.CloudArea),
		Pressure: int(details.AirPressure),
		Humidity: int(details.RelHumidity),
		Symbol:   normalizeYrSymbol(current.Data.Next1Hours.Summary.SymbolCode),
	}
}

// normalizeYrSymbol maps a yr.no symbol code onto the shared condition keys.
func normalizeYrSymbol(code string) string {
	base := code
	for _, suffix := range []string{"_day", "_night", "_polartwilight"} {
		base = strings.TrimSuffix(base, suffix)
	}

	switch base {
	case "":
		return "unknown"
	case "fair":
		return "partlycloudy"
	case "lightrain", "heavyrain":
		return "rain"
	case "lightsnow", "heavysnow":
		return "snow"
	case "lightsleet", "heavysleet":
		return "sleet"
	case "rainshowers", "lightrainshowers", "heavyrainshowers":
		return "rainshowers"
	case "snowshowers", "lightsnowshowers", "heavysnowshowers":
		return "snowshowers"
	}
	if strings.Contains(base, "thunder") {
		return "thunderstorm"
	}
	return base
}
