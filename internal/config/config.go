// Package config persists the user's season and tracked selection as JSON and
// reads runtime knobs from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nba-cal/internal/teams"
)

// Config is the persisted application state.
type Config struct {
	Season  string          `json:"season"`
	Tracked teams.Selection `json:"tracked"`
}

// Runtime holds environment-driven knobs that are never persisted.
type Runtime struct {
	LogLevel    string
	LogFormat   string
	HTTPTimeout Duration
	FetchDelay  Duration
	MaxRetries  int
	ScheduleURL string
	StatsURL    string
	OutputDir   string
}

// LoadRuntime reads runtime configuration from environment variables with
// sensible defaults.
func LoadRuntime() Runtime {
	return Runtime{
		LogLevel:    envOrDefault(envLogLevel, "info"),
		LogFormat:   envOrDefault(envLogFormat, "text"),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		FetchDelay:  durationEnvOrDefault(envFetchDelay, defaultFetchDelay),
		MaxRetries:  intEnvOrDefault(envMaxRetries, defaultMaxRetries),
		ScheduleURL: os.Getenv(envScheduleURL),
		StatsURL:    os.Getenv(envStatsURL),
		OutputDir:   CalendarsDir(),
	}
}

// Load reads the persisted config. NBA_CAL_CONFIG may carry inline JSON to
// bypass the file (useful in CI). A missing or unreadable file yields a
// default config for the current season.
func Load() Config {
	if raw := os.Getenv(envConfig); raw != "" {
		var cfg Config
		if err := json.Unmarshal([]byte(raw), &cfg); err == nil {
			return withSeasonDefault(cfg)
		}
	}

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		return Config{Season: CurrentSeason()}
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{Season: CurrentSeason()}
	}
	return withSeasonDefault(cfg)
}

// Save persists the config, creating the config directory if needed.
func Save(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// CurrentSeason derives the season string from today's date; a new season
// starts in October.
func CurrentSeason() string {
	return seasonAt(time.Now())
}

func seasonAt(now time.Time) string {
	year := now.Year()
	if now.Month() < time.October {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

func withSeasonDefault(cfg Config) Config {
	if cfg.Season == "" {
		cfg.Season = CurrentSeason()
	}
	return cfg
}
