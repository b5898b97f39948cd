package main

import (
	"flag"
	"fmt"
	"os"

	"tunesync/internal/config"
	"tunesync/internal/tui"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to config file")
		musicFlag    = flag.String("music", "", "Music directory to seed the library from (overrides config)")
		simulateFlag = flag.Bool("simulate", false, "Periodically apply simulated network updates")
	)

	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *musicFlag != "" {
		settings.MusicPath = *musicFlag
	}
	if *simulateFlag {
		settings.SimulateNetwork = true
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
