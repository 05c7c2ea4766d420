// Package astro implements the astro subcommand, which prints only the
// astronomical sections of the report.
package astro

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	astroengine "github.com/aikalabs/aika-go/internal/astro"
	"github.com/aikalabs/aika-go/internal/conf"
	"github.com/aikalabs/aika-go/internal/ephemeris"
	"github.com/aikalabs/aika-go/internal/report"
)

// Command creates the astro command.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "astro",
		Short: "Print solar, lunar, and eclipse information only",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(settings)
		},
	}
}

func run(settings *conf.Settings) error {
	now := time.Now()
	obs := astroengine.NewObserver(
		settings.Location.Latitude, settings.Location.Longitude,
		now, settings.Location.Timezone)
	engine := astroengine.New(ephemeris.NewCalculator())
	snapshot := engine.ComputeSnapshot(obs)

	data := &report.Data{
		Now:      obs.LocalTime,
		TZ:       obs.TZ,
		Latitude: settings.Location.Latitude,
		City:     settings.Location.City,
		Country:  settings.Location.Country,
		Astro:    &snapshot,
	}
	return report.NewRenderer(settings.Language).Render(os.Stdout, data)
}
