// Package testdata embeds gzip-compressed corpora of real-world METAR and
// TAF lines for tests.
package testdata

import (
	"bufio"
	"compress/gzip"
	"embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.gz
var corpora embed.FS

func newScanner(t testing.TB, path string) *bufio.Scanner {
	f, err := corpora.Open(path)
	require.NoError(t, err)

	r, err := gzip.NewReader(f)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, r.Close())
	})

	scanner := bufio.NewScanner(r)
	t.Cleanup(func() {
		require.NoError(t, scanner.Err())
	})

	return scanner
}

// METAR scans the METAR corpus, one report per line, station first.
func METAR(t testing.TB) *bufio.Scanner {
	return newScanner(t, "metar.txt.gz")
}

// TAF scans the TAF corpus, one forecast per line, starting with "TAF".
func TAF(t testing.TB) *bufio.Scanner {
	return newScanner(t, "taf.txt.gz")
}

// Lines drains s and returns its non-blank lines, trimmed.
func Lines(s *bufio.Scanner) []string {
	var lines []string
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
