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

	"github.com/fatih/color"
	"github.com/rmitchellscott/wxparse/internal/config"
	"github.com/rmitchellscott/wxparse/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define command-line flags
	configPath := flag.String("config", "", "Path to TOML config file")
	metarOnly := flag.Bool("metar", false, "Show only METAR")
	tafOnly := flag.Bool("taf", false, "Show only TAF")
	noRawFlag := flag.Bool("no-raw", false, "Hide raw data")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	invalidFlag := flag.Bool("invalid", false, "List only groups that failed their plausibility check")
	debugFlag := flag.Bool("debug", false, "Log decoder diagnostics to stderr")
	flag.Parse()

	cfg, err := config.LoadWithFallback(*configPath)
	if err != nil {
		return err
	}
	if *noRawFlag {
		cfg.Output.Raw = false
	}
	if *flagNoColor {
		cfg.Output.Color = false
	}
	if *invalidFlag {
		cfg.Output.ShowInvalid = true
	}
	if *debugFlag {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !cfg.Output.Color {
		color.NoColor = true // disables colorized output globally
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		out:     os.Stdout,
		fetcher: NewFetcher(cfg.Fetch.BaseURL, time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second),
		logger:  log,
		opts: displayOptions{
			showRaw:     cfg.Output.Raw,
			invalidOnly: cfg.Output.ShowInvalid,
		},
	}

	// First check stdin for piped reports
	if stdinIsPiped() {
		reports, err := readReports(os.Stdin)
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			return errors.New("no report found on stdin")
		}
		for _, raw := range reports {
			a.processReport(raw)
		}
		return nil
	}

	var stationCode string
	if args := flag.Args(); len(args) > 0 {
		station, raw, err := classifyArgs(args)
		if err != nil {
			return err
		}
		if raw != "" {
			a.processReport(raw)
			return nil
		}
		stationCode = station
	} else {
		stationCode, err = promptForStationCode(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	// Fetch and display METAR if requested or by default
	if !*tafOnly {
		if err := a.processMETAR(ctx, stationCode); err != nil {
			return err
		}
	}

	// Fetch and display TAF if requested or by default
	if !*metarOnly {
		// Add a line break if we also displayed METAR
		if !*tafOnly {
			fmt.Fprintln(a.out, "\n----------------------------------")
		}
		return a.processTAF(ctx, stationCode)
	}

	return nil
}
