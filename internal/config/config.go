package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the wxparse configuration file layout.
type Config struct {
	Output  OutputConfig  `toml:"output"`  // Terminal listing settings
	Logging LoggingConfig `toml:"logging"` // Diagnostic logging settings
	Fetch   FetchConfig   `toml:"fetch"`   // Report download settings
}

// OutputConfig controls how decoded reports are printed
type OutputConfig struct {
	Color       bool `toml:"color"`        // Colourise the group listing
	Raw         bool `toml:"raw"`          // Print the raw report above the listing
	ShowInvalid bool `toml:"show_invalid"` // List only groups that failed their plausibility check
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`  // Log level: "debug", "info", "warn", or "error"
	Format string `toml:"format"` // Log format: "json" (structured) or "console" (human-readable)
}

// FetchConfig contains settings for downloading reports
type FetchConfig struct {
	BaseURL        string `toml:"base_url"`        // Aviation Weather Center data API root
	TimeoutSeconds int    `toml:"timeout_seconds"` // HTTP timeout per request
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Color: true,
			Raw:   true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Fetch: FetchConfig{
			BaseURL:        "https://aviationweather.gov/api/data",
			TimeoutSeconds: 10,
		},
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	return config, nil
}

// SearchPaths lists the files LoadWithFallback tries after the preferred
// path, in order.
func SearchPaths() []string {
	paths := []string{"wxparse.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "wxparse", "config.toml"))
	}
	return paths
}

// LoadWithFallback loads preferredPath when given, which must then exist.
// Otherwise the first existing file from SearchPaths is used, and the
// defaults when there is none.
func LoadWithFallback(preferredPath string) (*Config, error) {
	if preferredPath != "" {
		return Load(preferredPath)
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		config, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		return config, nil
	}

	return Default(), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid log level
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
		// Valid log format
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Fetch.BaseURL == "" {
		return errors.New("fetch base_url is required")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid fetch timeout: %d", c.Fetch.TimeoutSeconds)
	}

	return nil
}
