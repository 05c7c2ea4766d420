// Package cmd assembles the CLI command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	astrocmd "github.com/aikalabs/aika-go/cmd/astro"
	reportcmd "github.com/aikalabs/aika-go/cmd/report"
	"github.com/aikalabs/aika-go/internal/buildinfo"
	"github.com/aikalabs/aika-go/internal/conf"
)

// RootCommand creates and returns the root command. Invoked without a
// subcommand it prints the full report.
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aika",
		Short: "Localized daily report: astronomy, weather, and Finland data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportcmd.Run(settings)
		},
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		reportcmd.Command(settings),
		astrocmd.Command(settings),
		versionCommand(),
	)

	return rootCmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("aika %s (built %s)\n", buildinfo.Version(), buildinfo.BuildDate())
		},
	}
}

// setupFlags lets the command line override the config file for the
// settings that vary per invocation. The flags write straight into the
// settings struct, so they take effect before any RunE executes.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	flags := cmd.PersistentFlags()

	flags.BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")
	flags.BoolVar(&settings.Offline, "offline", settings.Offline, "Skip network data sources")
	flags.Float64Var(&settings.Location.Latitude, "latitude", settings.Location.Latitude, "Observer latitude in decimal degrees")
	flags.Float64Var(&settings.Location.Longitude, "longitude", settings.Location.Longitude, "Observer longitude in decimal degrees")
	flags.StringVar(&settings.Location.Timezone, "timezone", settings.Location.Timezone, "IANA timezone identifier")
	flags.StringVarP(&settings.Language, "language", "l", settings.Language, "Report language (fi or en)")
}
