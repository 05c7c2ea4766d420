package main

import (
	"fmt"
	"os"

	"github.com/aikalabs/aika-go/cmd"
	"github.com/aikalabs/aika-go/internal/conf"
	"github.com/aikalabs/aika-go/internal/logging"
)

func main() {
	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init()
	// The report itself goes to stdout; keep all logging off it.
	logging.SetOutput(os.Stderr, os.Stderr)
	if settings.Main.Log.Enabled {
		closeLog, err := logging.InitFile(settings.Main.Log.Path)
		if err != nil {
			logging.Warn("file logging unavailable", "error", err)
		} else {
			defer func() {
				if err := closeLog(); err != nil {
					fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
				}
			}()
		}
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
