package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var stationRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)

// stdinIsPiped checks if input is being piped in (stdin)
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice == 0
}

// readReports reads every report piped in on r
func readReports(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return splitReports(string(data)), nil
}

// splitReports separates reports in a block of text. A report ends at "="
// or a blank line, and a line that starts without indentation begins a new
// report. Indented lines continue the previous one, as in multi-line TAFs.
func splitReports(text string) []string {
	var reports []string
	var cur strings.Builder

	flush := func() {
		if s := strings.Join(strings.Fields(cur.String()), " "); s != "" {
			reports = append(reports, s)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			flush()
		}
		pieces := strings.Split(trimmed, "=")
		for i, p := range pieces {
			cur.WriteString(" " + p)
			if i < len(pieces)-1 {
				flush()
			}
		}
	}
	flush()

	return reports
}

// classifyArgs tells a station code from a raw report given on the
// command line. Exactly one of station and raw is set on success.
func classifyArgs(args []string) (station, raw string, err error) {
	input := strings.ToUpper(strings.TrimSpace(strings.Join(args, " ")))
	if input == "" {
		return "", "", errors.New("no station code provided")
	}

	if len(strings.Fields(input)) > 1 {
		return "", input, nil
	}
	if !stationRegex.MatchString(input) {
		return "", "", fmt.Errorf("invalid station code %q: must be 4 characters", input)
	}
	return input, "", nil
}

// promptForStationCode prompts the user for a station code
func promptForStationCode(in io.Reader, out io.Writer) (string, error) {
	reader := bufio.NewReader(in)
	fmt.Fprint(out, "Enter ICAO airport code (e.g., KJFK, EGLL): ")
	input, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", fmt.Errorf("error reading input: %w", err)
	}

	stationCode := strings.ToUpper(strings.TrimSpace(input))
	if !stationRegex.MatchString(stationCode) {
		return "", fmt.Errorf("invalid station code %q: must be 4 characters", stationCode)
	}

	return stationCode, nil
}
