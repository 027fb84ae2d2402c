package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"mbzcue/internal/config"
	"mbzcue/internal/generate"
)

func main() {
	// Command line flags
	var (
		urlFlag        = flag.String("url", "", "MusicBrainz release URL(s) (comma-separated or newline-separated)")
		wavFileFlag    = flag.String("wav_file", "", "Audio file name to reference in the FILE directive")
		outputFileFlag = flag.String("output_file", "", "Output cue file name (default derived from the release title)")
		debugLevelFlag = flag.Int("debug_level", 1, "Verbosity: 0 errors only, 1 adds results, 2 adds info, 3 adds debug")
		configFlag     = flag.String("config", "", "Path to config file")
		coverFlag      = flag.Bool("cover", false, "Download the release's front cover art next to the cue sheet")
		dryRunFlag     = flag.Bool("dry-run", false, "Fetch and print the tracklist without writing anything")
	)

	flag.Parse()

	// Require a URL
	if *urlFlag == "" && flag.NArg() == 0 {
		fmt.Println("mbzcue - Generate a cue sheet from a MusicBrainz release")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  mbzcue -url <URL> -wav_file <file.wav> [options]")
		fmt.Println("  mbzcue <URL> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: mbzcue-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

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
	if *wavFileFlag != "" {
		settings.WaveFileName = *wavFileFlag
	}
	if *outputFileFlag != "" {
		settings.CueFileNameFormat = strings.TrimSuffix(*outputFileFlag, ".cue")
	}
	if *coverFlag {
		settings.SaveCoverArt = true
	}
	settings.DebugLevel = *debugLevelFlag

	// Get URLs
	urls := *urlFlag
	if urls == "" && flag.NArg() > 0 {
		urls = flag.Arg(0)
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

	// Create manager with progress callback
	manager := generate.NewManager(settings, func(event generate.ProgressEvent) {
		if !levelEnabled(event.Level, settings.DebugLevel) {
			return
		}

		prefix := "  "
		switch event.Level {
		case generate.LevelError:
			prefix = "x "
		case generate.LevelWarning:
			prefix = "! "
		case generate.LevelSuccess:
			prefix = "+ "
		case generate.LevelInfo:
			prefix = "> "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Initialize(ctx, urls); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		printTracklists(manager)
		return
	}

	if err := manager.Generate(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	written, total := manager.GetProgress()
	if settings.DebugLevel >= 1 {
		fmt.Printf("\nDone. Wrote %d/%d files.\n", written, total)
	}
}

// levelEnabled reports whether an event level passes the debug level
// filter: 0 shows errors and warnings only, 1 adds results, 2 adds
// info, 3 adds debug output.
func levelEnabled(level generate.ProgressLevel, debugLevel int) bool {
	switch level {
	case generate.LevelError, generate.LevelWarning:
		return true
	case generate.LevelSuccess:
		return debugLevel >= 1
	case generate.LevelInfo:
		return debugLevel >= 2
	default:
		return debugLevel >= 3
	}
}

// printTracklists prints the parsed releases for a dry run.
func printTracklists(manager *generate.Manager) {
	fmt.Println("\n[Dry run - not writing files]")
	for _, release := range manager.Releases() {
		fmt.Printf("\n%s - %s\n", release.Artist, release.Title)
		for _, disc := range release.Discs {
			if len(release.Discs) > 1 {
				fmt.Printf("  Disc %d:\n", disc.Number)
			}
			for _, track := range disc.Tracks {
				fmt.Printf("  %02d. %s - %s (%s)\n", track.Number, track.Performer, track.Title, track.Length())
			}
		}
	}
}
