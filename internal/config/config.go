// Package config provides centralized configuration for the ingest and API
// commands: a YAML file for the league/season matrix and per-step toggles,
// with environment variables overriding the operational knobs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// --------------------------------------------------------------------------
// League registry — provider identifiers keyed by our league keys
// --------------------------------------------------------------------------

// DefaultLeagues maps league keys (used in directory layout and the API) to
// the provider's league identifiers.
var DefaultLeagues = map[string]string{
	"LaLiga_ESP":        "ESP-La Liga",
	"PremierLeague_ENG": "ENG-Premier League",
}

// DefaultSeasons maps season labels to the provider's season start year.
var DefaultSeasons = map[string]int{
	"2023-2024": 2023,
	"2024-2025": 2024,
}

// --------------------------------------------------------------------------
// Config structs — YAML file plus environment overrides
// --------------------------------------------------------------------------

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped standard-library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// FBrefConfig controls the provider fetch steps.
type FBrefConfig struct {
	Leagues map[string]string `yaml:"leagues"`
	Seasons map[string]int    `yaml:"seasons"`

	EnableLeagueInit   bool `yaml:"enable_league_init"`
	EnableTeamMatch    bool `yaml:"enable_team_match"`
	EnableTeamSeason   bool `yaml:"enable_team_season"`
	EnablePlayerMatch  bool `yaml:"enable_player_match"`
	EnablePlayerSeason bool `yaml:"enable_player_season"`

	// Politeness towards the provider.
	RequestsPerMinute int      `yaml:"requests_per_minute"`
	Timeout           Duration `yaml:"timeout"`
	MaxRetries        int      `yaml:"max_retries"`
	UserAgent         string   `yaml:"user_agent"`
}

type Config struct {
	// Data directory root: <DataDir>/<season>/<league>/...
	DataDir string `yaml:"data_dir"`

	FBref FBrefConfig `yaml:"fbref"`

	// Worker pool size for league×season iteration.
	Workers int `yaml:"workers"`

	// Optional Postgres sink; empty means files only.
	DatabaseURL    string `yaml:"-"`
	DBPoolMinConns int    `yaml:"-"`
	DBPoolMaxConns int    `yaml:"-"`

	// API server
	APIHost          string   `yaml:"api_host"`
	APIPort          int      `yaml:"api_port"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	RateLimitEnabled bool     `yaml:"rate_limit_enabled"`
	RateLimitReqs    int      `yaml:"rate_limit_requests"`
	RateLimitWindow  Duration `yaml:"rate_limit_window"`
	CacheEnabled     bool     `yaml:"cache_enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir: "data/raw",
		FBref: FBrefConfig{
			Leagues:            copyMap(DefaultLeagues),
			Seasons:            copyMap(DefaultSeasons),
			EnableLeagueInit:   true,
			EnableTeamMatch:    true,
			EnableTeamSeason:   true,
			EnablePlayerMatch:  true,
			EnablePlayerSeason: true,
			RequestsPerMinute:  20,
			Timeout:            Duration(20 * time.Second),
			MaxRetries:         3,
			UserAgent:          "footballstats-ingest/1.0",
		},
		Workers: 2,

		APIHost: "0.0.0.0",
		APIPort: 8000,
		CORSAllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		RateLimitEnabled: true,
		RateLimitReqs:    100,
		RateLimitWindow:  Duration(60 * time.Second),
		CacheEnabled:     true,
	}
}

// Load reads the YAML config file (if path is non-empty and the file exists)
// on top of defaults, then applies environment overrides. League and season
// entries in the file are merged over the default set.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err != nil && os.IsNotExist(err):
			// Defaults + env only.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if len(cfg.FBref.Leagues) == 0 {
		return nil, fmt.Errorf("no leagues configured")
	}
	if len(cfg.FBref.Seasons) == 0 {
		return nil, fmt.Errorf("no seasons configured")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DataDir = envOr("DATA_DIR", c.DataDir)
	c.DatabaseURL = envOr("DATABASE_URL", c.DatabaseURL)
	c.DBPoolMinConns = envInt("DB_POOL_MIN_CONNS", 1)
	c.DBPoolMaxConns = envInt("DB_POOL_MAX_CONNS", 4)
	c.Workers = envInt("INGEST_WORKERS", c.Workers)

	c.APIHost = envOr("API_HOST", c.APIHost)
	c.APIPort = envInt("API_PORT", envInt("PORT", c.APIPort))
	c.CORSAllowOrigins = envList("CORS_ALLOW_ORIGINS", c.CORSAllowOrigins)
	c.RateLimitEnabled = envBool("RATE_LIMIT_ENABLED", c.RateLimitEnabled)
	c.CacheEnabled = envBool("CACHE_ENABLED", c.CacheEnabled)

	c.FBref.RequestsPerMinute = envInt("FBREF_REQUESTS_PER_MINUTE", c.FBref.RequestsPerMinute)
	c.FBref.UserAgent = envOr("FBREF_USER_AGENT", c.FBref.UserAgent)
}

// FilterLeagues returns the configured leagues restricted to the given keys.
// An empty filter keeps everything.
func (c *Config) FilterLeagues(only []string) map[string]string {
	return filterMap(c.FBref.Leagues, only)
}

// FilterSeasons returns the configured seasons restricted to the given labels.
func (c *Config) FilterSeasons(only []string) map[string]int {
	return filterMap(c.FBref.Seasons, only)
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func filterMap[V any](m map[string]V, only []string) map[string]V {
	if len(only) == 0 {
		return m
	}
	keep := make(map[string]struct{}, len(only))
	for _, k := range only {
		if trimmed := strings.TrimSpace(k); trimmed != "" {
			keep[trimmed] = struct{}{}
		}
	}
	out := make(map[string]V)
	for k, v := range m {
		if _, ok := keep[k]; ok {
			out[k] = v
		}
	}
	return out
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
