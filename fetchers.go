package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoData is returned when the service answers but has no report for the
// station.
var ErrNoData = errors.New("no data")

// Fetcher downloads raw reports from the Aviation Weather Center data API.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// fetchData fetches the plain-text endpoint for a given station code
func (f *Fetcher) fetchData(ctx context.Context, endpoint, stationCode, dataType string) (string, error) {
	u := fmt.Sprintf("%s/%s?ids=%s", f.baseURL, endpoint, url.QueryEscape(stationCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("error building %s request: %w", dataType, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching %s: %w", dataType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	data := strings.TrimSpace(string(body))
	if data == "" {
		return "", fmt.Errorf("no %s data found for station %s: %w", dataType, stationCode, ErrNoData)
	}

	return data, nil
}

// FetchMETAR fetches the raw METAR for a given station code
func (f *Fetcher) FetchMETAR(ctx context.Context, stationCode string) (string, error) {
	return f.fetchData(ctx, "metar", stationCode, "METAR")
}

// FetchTAF fetches the raw TAF for a given station code
func (f *Fetcher) FetchTAF(ctx context.Context, stationCode string) (string, error) {
	return f.fetchData(ctx, "taf", stationCode, "TAF")
}
