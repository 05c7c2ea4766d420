package finland

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

const (
	FoliAlertsURL         = "https://data.foli.fi/alerts/messages"
	digitransitURLPattern = "https://api.digitransit.fi/routing/v2/%s/gtfs/v1"

	// Alerts older than this are noise for a daily report.
	alertMaxAge = 24 * time.Hour
	maxAlerts   = 5
)

// cityFeed maps a bounding box to a Digitransit GTFS feed and router.
type cityFeed struct {
	minLat, maxLat float64
	minLon, maxLon float64
	feed           string
	router         string
}

// cityFeeds covers the Finnish cities with Digitransit coverage. The
// Helsinki region has its own router; the rest ride on waltti.
var cityFeeds = []cityFeed{
	{60.10, 60.40, 24.50, 25.20, "HSL", "hsl"},
	{60.30, 60.60, 22.00, 22.60, "FOLI", "waltti"},
	{61.40, 61.60, 23.60, 24.00, "tampere", "waltti"},
	{64.85, 65.15, 25.30, 25.70, "OULU", "waltti"},
	{62.10, 62.40, 25.55, 25.95, "LINKKI", "waltti"},
	{62.75, 63.05, 27.50, 27.90, "Kuopio", "waltti"},
	{60.85, 61.10, 25.45, 25.85, "Lahti", "waltti"},
	{62.45, 62.75, 29.55, 29.95, "Joensuu", "waltti"},
	{62.95, 63.25, 21.45, 21.85, "Vaasa", "waltti"},
	{61.35, 61.65, 21.60, 22.00, "Pori", "waltti"},
	{60.85, 61.15, 24.30, 24.65, "Hameenlinna", "waltti"},
	{60.35, 60.60, 26.75, 27.15, "Kotka", "waltti"},
	{60.70, 61.00, 26.50, 26.90, "Kouvola", "waltti"},
	{60.90, 61.20, 28.00, 28.40, "Lappeenranta", "waltti"},
	{66.35, 66.65, 25.55, 25.95, "Rovaniemi", "waltti"},
	{64.10, 64.40, 27.55, 27.95, "Kajaani", "waltti"},
	{61.55, 61.85, 27.10, 27.50, "Mikkeli", "waltti"},
	{59.95, 60.15, 23.35, 23.65, "Raasepori", "waltti"},
	{60.35, 60.55, 22.65, 23.05, "Salo", "waltti"},
}

// CityFeedFor returns the Digitransit feed and router for a location, or
// empty strings when the location is outside every covered city.
func CityFeedFor(latitude, longitude float64) (feed, router string) {
	for _, c := range cityFeeds {
		if latitude >= c.minLat && latitude <= c.maxLat &&
			longitude >= c.minLon && longitude <= c.maxLon {
			return c.feed, c.router
		}
	}
	return "", ""
}

// inFoliArea covers Turku and its Föli member municipalities, which have
// their own alert API in addition to the Digitransit feed.
func inFoliArea(latitude, longitude float64) bool {
	return latitude >= 60.3 && latitude <= 60.6 && longitude >= 22.0 && longitude <= 22.6
}

// TransitAlert is one public transport disruption.
type TransitAlert struct {
	Header      string `json:"header"`
	Description string `json:"description,omitempty"`
	Severity    string `json:"severity"`
	StartTime   int64  `json:"starttime"`
}

// TransitDisruptions is the newest-first alert list for the observer's city.
type TransitDisruptions struct {
	Alerts []TransitAlert `json:"alerts"`
}

// TransitDisruptions geofences the observer to a city and fetches its alerts.
// Turku combines the Föli API with the Digitransit FOLI feed; other cities
// use Digitransit alone. Outside covered cities the result is nil.
func (s *Service) TransitDisruptions(now time.Time) (*TransitDisruptions, error) {
	if !s.inFinland() || !s.settings.Finland.Transit {
		return nil, nil
	}

	var cached TransitDisruptions
	if s.store.Get("transit", &cached) {
		return &cached, nil
	}

	lat := s.settings.Location.Latitude
	lon := s.settings.Location.Longitude

	var alerts []TransitAlert
	seen := map[string]bool{}

	if inFoliArea(lat, lon) {
		alerts = append(alerts, s.foliAlerts(now, seen)...)
		alerts = append(alerts, s.digitransitAlerts(now, "FOLI", "waltti", seen)...)
	} else {
		feed, router := CityFeedFor(lat, lon)
		if feed == "" {
			logger.Debug("location outside covered transit cities", "lat", lat, "lon", lon)
			return nil, nil
		}
		alerts = append(alerts, s.digitransitAlerts(now, feed, router, seen)...)
	}

	if len(alerts) == 0 {
		return nil, nil
	}

	sort.Slice(alerts, func(i, j int) bool { return alerts[i].StartTime > alerts[j].StartTime })
	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}

	result := &TransitDisruptions{Alerts: alerts}
	if err := s.store.Put("transit", result); err != nil {
		logger.Warn("failed to cache transit disruptions", "error", err)
	}
	return result, nil
}

type foliResponse struct {
	EmergencyMessage *foliMessage `json:"emergency_message"`
	GlobalMessage    *foliMessage `json:"global_message"`
	Messages         []struct {
		foliMessage
		IsActive bool      `json:"isactive"`
		Priority int       `json:"priority"`
		Repeat   [][]int64 `json:"repeat"`
	} `json:"messages"`
}

type foliMessage struct {
	Header  string `json:"header"`
	Message string `json:"message"`
}

// foliAlerts reads the Föli message feed. Emergency and global messages pin
// to the top via synthetic start times; ordinary messages pass the 24-hour
// recency filter.
func (s *Service) foliAlerts(now time.Time, seen map[string]bool) []TransitAlert {
	body, err := s.fetchJSON(FoliAlertsURL, nil)
	if err != nil {
		logger.Warn("foli alerts fetch failed", "error", err)
		return nil
	}

	var response foliResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.Warn("foli alerts response malformed", "error", err)
		return nil
	}

	nowTS := now.Unix()
	cutoff := nowTS - int64(alertMaxAge.Seconds())
	var alerts []TransitAlert

	if m := response.EmergencyMessage; m != nil && m.Header != "" && !seen[m.Header] {
		seen[m.Header] = true
		alerts = append(alerts, TransitAlert{
			Header: m.Header, Description: m.Message,
			Severity: "SEVERE", StartTime: nowTS + 999999999,
		})
	}
	if m := response.GlobalMessage; m != nil && m.Header != "" && !seen[m.Header] {
		seen[m.Header] = true
		alerts = append(alerts, TransitAlert{
			Header: m.Header, Description: m.Message,
			Severity: "INFO", StartTime: nowTS + 999999998,
		})
	}

	for i := range response.Messages {
		msg := &response.Messages[i]
		if !msg.IsActive || msg.Header == "" || seen[msg.Header] {
			continue
		}

		start := int64(0)
		end := int64(1<<62 - 1)
		if len(msg.Repeat) > 0 && len(msg.Repeat[0]) > 0 {
			start = msg.Repeat[0][0]
			if len(msg.Repeat[0]) > 1 {
				end = msg.Repeat[0][1]
			}
		}
		if start > nowTS || end < nowTS || start < cutoff {
			continue
		}

		severity := "INFO"
		if msg.Priority > 500 {
			severity = "WARNING"
		}
		seen[msg.Header] = true
		alerts = append(alerts, TransitAlert{
			Header: msg.Header, Description: msg.Message,
			Severity: severity, StartTime: start,
		})
	}

	return alerts
}

const digitransitAlertQuery = `{
  alerts {
    alertHeaderText
    alertDescriptionText
    alertSeverityLevel
    effectiveStartDate
    effectiveEndDate
    feed
  }
}`

type digitransitResponse struct {
	Data struct {
		Alerts []struct {
			AlertHeaderText      string `json:"alertHeaderText"`
			AlertDescriptionText string `json:"alertDescriptionText"`
			AlertSeverityLevel   string `json:"alertSeverityLevel"`
			EffectiveStartDate   int64  `json:"effectiveStartDate"`
			EffectiveEndDate     *int64 `json:"effectiveEndDate"`
			Feed                 string `json:"feed"`
		} `json:"alerts"`
	} `json:"data"`
}

// digitransitAlerts queries the GraphQL alert list for one feed. Without an
// API key the source is silently skipped.
func (s *Service) digitransitAlerts(now time.Time, feed, router string, seen map[string]bool) []TransitAlert {
	apiKey := s.settings.Finland.DigitransitAPIKey
	if apiKey == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"query": digitransitAlertQuery})
	if err != nil {
		return nil
	}

	url := fmt.Sprintf(digitransitURLPattern, router)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("digitransit-subscription-key", apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("digitransit alerts fetch failed", "router", router, "error", err)
		return nil
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug("failed to close response body", "error", closeErr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		logger.Warn("digitransit alerts non-OK status", "router", router, "status_code", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	var response digitransitResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.Warn("digitransit alerts response malformed", "error", err)
		return nil
	}

	nowTS := now.Unix()
	cutoff := nowTS - int64(alertMaxAge.Seconds())
	var alerts []TransitAlert

	for _, alert := range response.Data.Alerts {
		if !strings.EqualFold(alert.Feed, feed) {
			continue
		}
		if alert.AlertHeaderText == "" || seen[alert.AlertHeaderText] {
			continue
		}

		end := int64(1<<62 - 1)
		if alert.EffectiveEndDate != nil {
			end = *alert.EffectiveEndDate
		}
		if alert.EffectiveStartDate > nowTS || end < nowTS || alert.EffectiveStartDate < cutoff {
			continue
		}

		severity := alert.AlertSeverityLevel
		if severity == "" {
			severity = "INFO"
		}
		seen[alert.AlertHeaderText] = true
		alerts = append(alerts, TransitAlert{
			Header:      alert.AlertHeaderText,
			Description: alert.AlertDescriptionText,
			Severity:    severity,
			StartTime:   alert.EffectiveStartDate,
		})
	}

	return alerts
}
