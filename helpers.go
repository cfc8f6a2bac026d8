package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rmitchellscott/wxparse/report"
	"go.uber.org/zap"
)

// app holds what the processing helpers share
type app struct {
	out     io.Writer
	fetcher *Fetcher
	logger  *zap.Logger
	opts    displayOptions
}

// processReport decodes a raw report and displays it
func (a *app) processReport(raw string) *report.Report {
	r := report.Parse(raw, report.WithLogger(a.logger))
	a.logger.Debug("decoded report",
		zap.String("station", r.Location),
		zap.Stringer("kind", r.Kind),
		zap.Int("groups", len(r.Entries)),
		zap.Int("implausible", len(r.Invalid())),
	)

	label := r.Kind.String()
	if r.Kind == report.KindUnknown {
		label = "report"
	}

	// Show raw report by default, unless the no-raw flag is used
	if a.opts.showRaw {
		fmt.Fprintf(a.out, "\nRaw %s:\n%s\n", label, raw)
	}

	fmt.Fprintf(a.out, "\nDecoded %s:\n", label)
	fmt.Fprint(a.out, FormatReport(r, a.opts))
	return r
}

// processMETAR fetches, decodes and displays METAR data
func (a *app) processMETAR(ctx context.Context, stationCode string) error {
	fmt.Fprintf(a.out, "Fetching METAR for %s...\n", stationCode)

	data, err := a.fetcher.FetchMETAR(ctx, stationCode)
	if err != nil {
		return err
	}
	for _, raw := range splitReports(data) {
		a.processReport(raw)
	}
	return nil
}

// processTAF fetches, decodes and displays TAF data
func (a *app) processTAF(ctx context.Context, stationCode string) error {
	fmt.Fprintf(a.out, "Fetching TAF for %s...\n", stationCode)

	data, err := a.fetcher.FetchTAF(ctx, stationCode)
	if err != nil {
		return err
	}
	for _, raw := range splitReports(data) {
		a.processReport(raw)
	}
	return nil
}
