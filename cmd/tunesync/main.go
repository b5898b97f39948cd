package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tunesync/internal/config"
	"tunesync/internal/convert"
	"tunesync/internal/library"
	"tunesync/internal/model"
	"tunesync/internal/netsync"
	"tunesync/internal/observe"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		musicFlag   = flag.String("music", "", "Music directory to seed the library from (overrides config)")
		feedFlag    = flag.String("feed", "", "Apply inbound network updates from a JSON-lines file")
		verboseFlag = flag.Bool("verbose", false, "Show observer refresh lines in addition to outbound lines")
		demoFlag    = flag.Bool("demo", true, "Run the scripted provenance demo")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *musicFlag != "" {
		settings.MusicPath = *musicFlag
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Outbound sink: the stand-in for a real network send.
	outbound := netsync.NewLogSender(func(line netsync.Line) {
		switch line.Level {
		case netsync.LevelWarning:
			fmt.Println("! " + line.Message)
		default:
			fmt.Println("→ " + line.Message)
		}
	})

	fmt.Println("tunesync")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	lib, err := seedLibrary(ctx, settings, outbound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding library: %v\n", err)
		os.Exit(1)
	}

	if settings.Verbose {
		watchLibrary(lib)
	}

	printLibrary(lib)

	if *demoFlag && len(lib.Artists) > 0 {
		runDemo(lib.Artists[0])
	}

	if *feedFlag != "" {
		if err := applyFeed(*feedFlag, lib); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying feed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\nLibrary after feed:")
		printLibrary(lib)
	}
}

// seedLibrary builds the library from the configured music directory, or
// falls back to the built-in sample. Seeding uses initialization origin,
// so it never emits outbound lines.
func seedLibrary(ctx context.Context, settings *config.Settings, outbound netsync.Sender) (*library.Library, error) {
	if settings.MusicPath == "" {
		fmt.Println("No music path configured, using sample library.")
		return library.Sample(outbound), nil
	}

	fmt.Printf("Seeding library from %s\n", settings.MusicPath)
	loader := library.NewLoader(settings.MaxConcurrentTagReads, outbound)
	return loader.Load(ctx, settings.MusicPath)
}

// watchLibrary subscribes to every field so verbose runs show observers
// refreshing on network updates even though nothing goes outbound.
func watchLibrary(lib *library.Library) {
	observed := func(ref observe.Ref) func(any) {
		return func(v any) { fmt.Printf("  observed %s = %v\n", ref, v) }
	}
	for _, artist := range lib.Artists {
		artist.Name.Subscribe(func(v string) { observed(artist.Name.Ref())(v) })
		artist.YearFounded.Subscribe(func(v int) { observed(artist.YearFounded.Ref())(v) })
		for _, album := range artist.Albums {
			album.Title.Subscribe(func(v string) { observed(album.Title.Ref())(v) })
			album.ReleaseYear.Subscribe(func(v int) { observed(album.ReleaseYear.Ref())(v) })
			for _, track := range album.Tracks {
				track.Title.Subscribe(func(v string) { observed(track.Title.Ref())(v) })
			}
		}
	}
}

func printLibrary(lib *library.Library) {
	fmt.Println()
	for _, artist := range lib.Artists {
		fmt.Printf("%s (founded %d)\n", artist.Name.Get(), artist.YearFounded.Get())
		for _, album := range artist.Albums {
			fmt.Printf("  %s (%d)\n", album.Title.Get(), album.ReleaseYear.Get())
			for _, track := range album.Tracks {
				fmt.Printf("    %s [%s]\n", track.Title.Get(), convert.FormatDuration(track.Duration.Get()))
			}
		}
	}
	fmt.Println()
}

// runDemo walks through the provenance rules on a live artist: a UI edit
// forwards outbound, a network update does not.
func runDemo(artist *model.Artist) {
	fmt.Println("Provenance demo")
	fmt.Println("───────────────")

	fmt.Printf("yearFounded = %d\n", artist.YearFounded.Get())

	fmt.Println("\nUI edit → 1990 (expect one outbound line):")
	observe.Update(artist, &artist.YearFounded, 1990, observe.OriginUI)
	fmt.Printf("yearFounded = %d\n", artist.YearFounded.Get())

	fmt.Println("\nNetwork update → 2010 (expect no outbound line):")
	observe.Update(artist, &artist.YearFounded, 2010, observe.OriginNetwork)
	fmt.Printf("yearFounded = %d\n", artist.YearFounded.Get())
}

// applyFeed streams inbound messages from a file into the library.
func applyFeed(path string, lib *library.Library) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("\nApplying inbound feed from %s\n", path)
	return netsync.Feed(f, lib, func(line netsync.Line) {
		fmt.Println("! " + line.Message)
	})
}
