package finland

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/aikalabs/aika-go/internal/errors"
)

// Spot price sources, cents/kWh including VAT. The v2 endpoint carries
// 15-minute intervals, v1 hourly prices.
const (
	PorssisahkoV2URL = "https://api.porssisahko.net/v2/latest-prices.json"
	PorssisahkoV1URL = "https://api.porssisahko.net/v1/latest-prices.json"
)

// ElectricityPrice is the current spot price. Either resolution may be
// missing when its endpoint fails; both absent is treated as a fetch failure.
type ElectricityPrice struct {
	PriceQuarter *float64 `json:"price_quarter,omitempty"` // current 15-minute interval
	PriceHour    *float64 `json:"price_hour,omitempty"`    // current hour
}

// PricePoint is one future interval, used for the cheapest-hours summary.
type PricePoint struct {
	Price float64   `json:"price"`
	Start time.Time `json:"start"`
}

// PriceOutlook summarizes the published future prices.
type PriceOutlook struct {
	Cheapest      *PricePoint  `json:"cheapest,omitempty"`
	MostExpensive *PricePoint  `json:"most_expensive,omitempty"`
	ThreeCheapest []PricePoint `json:"three_cheapest,omitempty"`
}

type porssisahkoResponse struct {
	Prices []struct {
		Price     float64   `json:"price"`
		StartDate time.Time `json:"startDate"`
		EndDate   time.Time `json:"endDate"`
	} `json:"prices"`
}

// ElectricityPrice returns the spot price for the given instant. The two
// endpoints are tried independently; a single succeeding resolution is enough.
func (s *Service) ElectricityPrice(now time.Time) (*ElectricityPrice, error) {
	if !s.inFinland() || !s.settings.Finland.Electricity {
		return nil, nil
	}

	var cached ElectricityPrice
	if s.store.Get("electricity", &cached) {
		return &cached, nil
	}

	result := &ElectricityPrice{}

	if price, ok := s.currentPrice(PorssisahkoV2URL, now); ok {
		result.PriceQuarter = &price
	}
	if price, ok := s.currentPrice(PorssisahkoV1URL, now); ok {
		result.PriceHour = &price
	}

	if result.PriceQuarter == nil && result.PriceHour == nil {
		return nil, errors.Newf("no electricity price available").
			Component("finland").
			Category(errors.CategoryNetwork).
			Context("operation", "electricity_price").
			Build()
	}

	if err := s.store.Put("electricity", result); err != nil {
		logger.Warn("failed to cache electricity price", "error", err)
	}
	return result, nil
}

// currentPrice fetches one price list and picks the interval containing now,
// falling back to the most recent published entry.
func (s *Service) currentPrice(url string, now time.Time) (float64, bool) {
	body, err := s.fetchJSON(url, nil)
	if err != nil {
		logger.Warn("electricity price fetch failed", "url", url, "error", err)
		return 0, false
	}

	var response porssisahkoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.Warn("electricity price response malformed", "url", url, "error", err)
		return 0, false
	}
	if len(response.Prices) == 0 {
		return 0, false
	}

	for _, entry := range response.Prices {
		if !now.Before(entry.StartDate) && !now.After(entry.EndDate) {
			return roundPrice(entry.Price), true
		}
	}
	// No interval matched; the list is newest first.
	return roundPrice(response.Prices[0].Price), true
}

// PriceOutlook summarizes the future intervals published by the v2 endpoint:
// the cheapest and most expensive upcoming slots and the three cheapest.
func (s *Service) PriceOutlook(now time.Time) (*PriceOutlook, error) {
	if !s.inFinland() || !s.settings.Finland.Electricity {
		return nil, nil
	}

	body, err := s.fetchJSON(PorssisahkoV2URL, nil)
	if err != nil {
		return nil, errors.New(err).
			Component("finland").
			Category(errors.CategoryNetwork).
			Context("operation", "price_outlook").
			Build()
	}

	var response porssisahkoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.New(err).
			Component("finland").
			Category(errors.CategoryValidation).
			Context("operation", "price_outlook").
			Build()
	}

	var future []PricePoint
	for _, entry := range response.Prices {
		if entry.StartDate.After(now) {
			future = append(future, PricePoint{Price: roundPrice(entry.Price), Start: entry.StartDate})
		}
	}
	if len(future) == 0 {
		return &PriceOutlook{}, nil
	}

	sort.Slice(future, func(i, j int) bool { return future[i].Price < future[j].Price })

	outlook := &PriceOutlook{
		Cheapest:      &future[0],
		MostExpensive: &future[len(future)-1],
	}
	n := min(3, len(future))
	outlook.ThreeCheapest = append(outlook.ThreeCheapest, future[:n]...)
	return outlook, nil
}

func roundPrice(p float64) float64 {
	return math.Round(p*1000) / 1000
}
