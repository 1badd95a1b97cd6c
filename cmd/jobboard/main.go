package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/ternarybob/arbor"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
	"github.com/fr4nk3nst1ner/jobboard/internal/config"
	"github.com/fr4nk3nst1ner/jobboard/internal/logging"
	"github.com/fr4nk3nst1ner/jobboard/internal/render"
	"github.com/fr4nk3nst1ner/jobboard/internal/ui"
	"github.com/fr4nk3nst1ner/jobboard/internal/web"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 JobBoard Usage Examples 📋")
	fmt.Println("\n1. List every job in a file:")
	fmt.Println("   jobboard -file jobs.json")

	fmt.Println("\n2. Show only senior full-time jobs, newest first:")
	fmt.Println("   jobboard -file jobs.json -level Senior -type \"Full-time\" -sort time-newest")

	fmt.Println("\n3. Show the details of the second job in the filtered list:")
	fmt.Println("   jobboard -file jobs.json -skill Go -detail 2")

	fmt.Println("\n4. Browse a file interactively:")
	fmt.Println("   jobboard -file jobs.json -interactive")

	fmt.Println("\n5. Serve the board in the browser on port 9090 and silence the banner:")
	fmt.Println("   jobboard -web -port 9090 -silence")

	fmt.Println("\nSort modes: title-az, title-za, time-newest, time-oldest")
}

func main() {
	// Command line flags
	file := flag.String("file", "", "Path to a JSON file with an array of jobs")
	level := flag.String("level", board.All, "Only show jobs with this level")
	jobType := flag.String("type", board.All, "Only show jobs with this type")
	skill := flag.String("skill", board.All, "Only show jobs with this skill")
	sortMode := flag.String("sort", "", "Sort mode (title-az, title-za, time-newest, time-oldest)")
	detail := flag.Int("detail", 0, "Show the details of the Nth job in the filtered list")
	interactive := flag.Bool("interactive", false, "Browse the file with interactive prompts")
	webMode := flag.Bool("web", false, "Serve the job board in the browser")
	port := flag.Int("port", 0, "Web server port (overrides config)")
	configPath := flag.String("config", "", "Path to a YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		pterm.Error.Printfln("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}
	if *sortMode == "" {
		*sortMode = cfg.Display.DefaultSort
	}
	if err := cfg.Validate(); err != nil {
		pterm.Error.Printfln("Invalid configuration: %v", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	// Display banner (skip if either -silence or -nobanner is set)
	ui.PrintBanner(*silence || *noBanner || !cfg.Display.Banner)

	// Handle -examples flag
	if *examples {
		printExamples()
		return
	}

	if *webMode {
		runWeb(cfg, logger)
		return
	}

	if *file == "" {
		pterm.Error.Println("A job file is required (use -file, or -web to serve the board)")
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := board.New(
		board.WithLogger(logger),
		board.WithMaxBytes(cfg.Board.MaxFileBytes),
		board.WithCollation(cfg.Board.Collation),
	)
	mode, err := parseSortFlag(*sortMode)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	b.SetSort(mode)

	src := ui.WithProgress(board.OSFile(*file), os.Stderr)
	loadErr := b.Ingest(ctx, src)

	if *interactive {
		if err := ui.NewInteractive(b, ui.PtermPrompter{}, os.Stdout, os.Stderr).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			pterm.Error.Printfln("Interactive session failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if loadErr == nil {
		if err := applySelection(b, *level, *jobType, *skill, *detail); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
	}

	if err := render.NewTerminal(os.Stdout).Render(render.Project(b.Snapshot())); err != nil {
		pterm.Error.Printfln("Failed to render jobs: %v", err)
		os.Exit(1)
	}
	if loadErr != nil {
		os.Exit(1)
	}
}

// parseSortFlag accepts an empty value or one of the named sort modes
func parseSortFlag(v string) (board.SortMode, error) {
	mode := board.ParseSortMode(v)
	if mode == board.SortNone && v != "" {
		return board.SortNone, fmt.Errorf("-sort %q: %w", v, board.ErrUnknownOption)
	}
	return mode, nil
}

// applySelection replays the filter flags as board transitions
func applySelection(b *board.Board, level, jobType, skill string, detail int) error {
	values := map[board.Axis]string{
		board.AxisLevel: level,
		board.AxisType:  jobType,
		board.AxisSkill: skill,
	}
	for _, axis := range board.Axes {
		if err := b.SetFilter(axis, values[axis]); err != nil {
			return fmt.Errorf("-%s %q: %w", axis, values[axis], err)
		}
	}

	if detail > 0 {
		if err := b.SelectJob(detail - 1); err != nil {
			return fmt.Errorf("-detail %d: %w", detail, err)
		}
	}
	return nil
}

func runWeb(cfg *config.AppConfig, logger arbor.ILogger) {
	srv, err := web.New(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create web server")
		os.Exit(1)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	url := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	pterm.Info.Printfln("Job board available at %s - Press Ctrl+C to stop", ui.FormatURL(url, true))

	// Wait for interrupt signal or a listener failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info().Msg("Interrupt signal received")
	case err := <-errChan:
		if err != nil {
			logger.Error().Err(err).Msg("Web server stopped")
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
