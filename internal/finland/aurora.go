package finland

import (
	"encoding/json"
	"strconv"

	"github.com/aikalabs/aika-go/internal/errors"
)

const (
	// NOAA planetary K index, a JSON table with a header row.
	NOAAKpIndexURL = "https://services.swpc.noaa.gov/products/noaa-planetary-k-index.json"
	// FMI regional magnetic activity level, best effort.
	FMIMagActivityURL = "https://rwc-finland.fmi.fi/api/mag-activity/latest"
)

// AuroraForecast is the current geomagnetic activity. Kp comes from NOAA and
// is required; the FMI activity level is a Finland-local refinement added
// when its endpoint answers.
type AuroraForecast struct {
	Kp          float64 `json:"kp"`
	FMIActivity string  `json:"fmi_activity,omitempty"`
}

// Visible is a rough Kp threshold for aurora at southern Finland latitudes.
func (a *AuroraForecast) Visible() bool {
	return a.Kp >= 4
}

// AuroraForecast fetches the latest Kp index, optionally refined by FMI.
func (s *Service) AuroraForecast() (*AuroraForecast, error) {
	if !s.settings.Finland.Aurora {
		return nil, nil
	}

	var cached AuroraForecast
	if s.store.Get("aurora", &cached) {
		return &cached, nil
	}

	kp, err := s.latestKp()
	if err != nil {
		return nil, errors.New(err).
			Component("finland").
			Category(errors.CategoryNetwork).
			Context("operation", "aurora_forecast").
			Build()
	}

	forecast := &AuroraForecast{Kp: kp}
	if activity, ok := s.fmiActivity(); ok {
		forecast.FMIActivity = activity
	}

	if err := s.store.Put("aurora", forecast); err != nil {
		logger.Warn("failed to cache aurora forecast", "error", err)
	}
	return forecast, nil
}

// latestKp parses the NOAA table: row 0 is the header, the last row is the
// most recent measurement, column 1 is the Kp value.
func (s *Service) latestKp() (float64, error) {
	body, err := s.fetchJSON(NOAAKpIndexURL, nil)
	if err != nil {
		return 0, err
	}

	var table [][]string
	if err := json.Unmarshal(body, &table); err != nil {
		return 0, err
	}
	if len(table) < 2 {
		return 0, errors.Newf("kp index table has no data rows").
			Component("finland").
			Category(errors.CategoryValidation).
			Build()
	}

	latest := table[len(table)-1]
	if len(latest) < 2 {
		return 0, errors.Newf("kp index row too short").
			Component("finland").
			Category(errors.CategoryValidation).
			Build()
	}
	return strconv.ParseFloat(latest[1], 64)
}

func (s *Service) fmiActivity() (string, bool) {
	body, err := s.fetchJSON(FMIMagActivityURL, nil)
	if err != nil {
		logger.Debug("fmi magnetic activity unavailable", "error", err)
		return "", false
	}

	var response struct {
		ActivityLevel string `json:"activity_level"`
	}
	if err := json.Unmarshal(body, &response); err != nil || response.ActivityLevel == "" {
		return "", false
	}
	return response.ActivityLevel, true
}
