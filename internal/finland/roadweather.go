package finland

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aikalabs/aika-go/internal/errors"
)

const (
	DigitrafficRoadURL = "https://tie.digitraffic.fi/api/weather/v1/forecast-sections-simple/forecasts"
	digitrafficUser    = "aika-go/1.0"

	// Bounding box half-width in degrees around the observer.
	roadWeatherMargin = 0.3
)

// Road condition keys in worsening order, as Digitraffic reports them.
const (
	RoadConditionNoData   = "NO_DATA"
	RoadConditionNormal   = "NORMAL"
	RoadConditionPoor     = "POOR"
	RoadConditionVeryPoor = "VERY_POOR"
)

var roadConditionPriority = map[string]int{
	RoadConditionNoData:   -1,
	RoadConditionNormal:   0,
	RoadConditionPoor:     1,
	RoadConditionVeryPoor: 2,
}

// RoadWeather is the worst forecast road condition near the observer.
type RoadWeather struct {
	Condition string `json:"condition"`
	Reason    string `json:"reason,omitempty"`
}

type roadForecastResponse struct {
	ForecastSections []struct {
		Forecasts []struct {
			OverallRoadCondition    string `json:"overallRoadCondition"`
			ForecastConditionReason struct {
				RoadCondition string `json:"roadCondition"`
				WindCondition string `json:"windCondition"`
			} `json:"forecastConditionReason"`
		} `json:"forecasts"`
	} `json:"forecastSections"`
}

// RoadWeather fetches forecast sections in a box around the observer and
// reduces them to the single worst condition, the way a driver would read it.
func (s *Service) RoadWeather() (*RoadWeather, error) {
	if !s.inFinland() || !s.settings.Finland.RoadWeather {
		return nil, nil
	}

	var cached RoadWeather
	if s.store.Get("roadweather", &cached) {
		return &cached, nil
	}

	lat := s.settings.Location.Latitude
	lon := s.settings.Location.Longitude
	url := fmt.Sprintf("%s?xMin=%.4f&yMin=%.4f&xMax=%.4f&yMax=%.4f",
		DigitrafficRoadURL,
		lon-roadWeatherMargin, lat-roadWeatherMargin,
		lon+roadWeatherMargin, lat+roadWeatherMargin)

	body, err := s.fetchJSON(url, map[string]string{"Digitraffic-User": digitrafficUser})
	if err != nil {
		return nil, errors.New(err).
			Component("finland").
			Category(errors.CategoryNetwork).
			Context("operation", "road_weather").
			Build()
	}

	var response roadForecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.New(err).
			Component("finland").
			Category(errors.CategoryValidation).
			Context("operation", "road_weather").
			Build()
	}

	result := reduceRoadForecasts(&response)

	if err := s.store.Put("roadweather", result); err != nil {
		logger.Warn("failed to cache road weather", "error", err)
	}
	return result, nil
}

func reduceRoadForecasts(response *roadForecastResponse) *RoadWeather {
	worst := ""
	reason := ""

	for i := range response.ForecastSections {
		section := &response.ForecastSections[i]
		if len(section.Forecasts) == 0 {
			continue
		}
		forecast := &section.Forecasts[0]

		condition := normalizeRoadCondition(forecast.OverallRoadCondition)
		if condition == "" {
			continue
		}
		if worst == "" || roadConditionPriority[condition] > roadConditionPriority[worst] {
			worst = condition
			switch {
			case forecast.ForecastConditionReason.RoadCondition != "":
				reason = forecast.ForecastConditionReason.RoadCondition
			case forecast.ForecastConditionReason.WindCondition != "":
				reason = forecast.ForecastConditionReason.WindCondition
			default:
				reason = ""
			}
		}
	}

	if worst == "" {
		return &RoadWeather{Condition: RoadConditionNoData}
	}
	return &RoadWeather{Condition: worst, Reason: reason}
}

func normalizeRoadCondition(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSuffix(strings.ToUpper(value), "_CONDITION")
}
