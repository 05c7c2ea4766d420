// Package report implements the report subcommand, which prints the full
// localized daily report.
package report

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aikalabs/aika-go/internal/astro"
	"github.com/aikalabs/aika-go/internal/cache"
	"github.com/aikalabs/aika-go/internal/conf"
	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/finland"
	"github.com/aikalabs/aika-go/internal/logging"
	"github.com/aikalabs/aika-go/internal/report"
	"github.com/aikalabs/aika-go/internal/weather"
)

// Command creates the report command.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full daily report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(settings)
		},
	}
}

// Run gathers every data source and renders the report to stdout.
func Run(settings *conf.Settings) error {
	logger := logging.ForService("report")
	if logger == nil {
		logger = slog.Default().With("service", "report")
	}
	store := cache.New(settings.Cache.Dir, settings.Cache.Enabled)
	now := time.Now()

	obs := astro.NewObserver(
		settings.Location.Latitude, settings.Location.Longitude,
		now, settings.Location.Timezone)
	engine := astro.New(ephemeris.NewCalculator())
	snapshot := engine.ComputeSnapshot(obs)

	data := &report.Data{
		Now:      obs.LocalTime,
		TZ:       obs.TZ,
		Latitude: settings.Location.Latitude,
		City:     settings.Location.City,
		Country:  settings.Location.Country,
		Astro:    &snapshot,
	}

	if settings.Offline {
		return report.NewRenderer(settings.Language).Render(os.Stdout, data)
	}

	if settings.Weather.Provider != "none" {
		data.WeatherExpected = true
		if svc, err := weather.NewService(settings, store); err != nil {
			logger.Warn("weather service unavailable", "error", err)
		} else if wd, err := svc.Fetch(); err != nil {
			logger.Warn("weather fetch failed", "error", err)
		} else {
			data.Weather = wd
		}
	}

	fi := finland.NewService(settings, store)
	if price, err := fi.ElectricityPrice(now); err != nil {
		logger.Warn("electricity price unavailable", "error", err)
	} else {
		data.Electricity = price
	}
	if aurora, err := fi.AuroraForecast(); err != nil {
		logger.Warn("aurora forecast unavailable", "error", err)
	} else {
		data.Aurora = aurora
	}
	if road, err := fi.RoadWeather(); err != nil {
		logger.Warn("road weather unavailable", "error", err)
	} else {
		data.Road = road
	}
	if transit, err := fi.TransitDisruptions(now); err != nil {
		logger.Warn("transit disruptions unavailable", "error", err)
	} else {
		data.Transit = transit
	}

	return report.NewRenderer(settings.Language).Render(os.Stdout, data)
}
