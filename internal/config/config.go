// Package config loads client configuration from a YAML file with
// environment overrides (IMGBOARD_*). A .env file in the working
// directory is honored the same way the service's server-side configs
// do it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	// BaseURL is the backend root, e.g. "https://board.example.com".
	BaseURL string `yaml:"base_url"`

	// PageSize is the pagination window for feed loads.
	PageSize int `yaml:"page_size"`

	// Display thresholds.
	MaxTextLength     int    `yaml:"max_text_length"`
	MaxVisibleTracks  int    `yaml:"max_visible_tracks"`
	DefaultTrackTitle string `yaml:"default_track_title"`
	DefaultArtist     string `yaml:"default_artist"`

	// VotesRequireAuth makes vote commands refuse to run without a
	// session. Deployments disagree on whether the vote endpoints
	// need a credential; leave false to let the server decide.
	VotesRequireAuth bool `yaml:"votes_require_auth"`

	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text or json
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		BaseURL:           "http://localhost:8000",
		PageSize:          50,
		MaxTextLength:     500,
		MaxVisibleTracks:  4,
		DefaultTrackTitle: "Untitled",
		DefaultArtist:     "Unknown artist",
		LogLevel:          "warn",
		LogFormat:         "text",
	}
}

// DefaultPath resolves the config location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "imgboard", "config.yaml"), nil
}

// Load reads the config file at path (missing file = defaults) and
// applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env is optional; absence is not an error.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if cfg.PageSize <= 0 {
		return cfg, fmt.Errorf("config: page_size must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.BaseURL, "IMGBOARD_BASE_URL")
	setInt(&cfg.PageSize, "IMGBOARD_PAGE_SIZE")
	setInt(&cfg.MaxTextLength, "IMGBOARD_MAX_TEXT_LENGTH")
	setInt(&cfg.MaxVisibleTracks, "IMGBOARD_MAX_VISIBLE_TRACKS")
	setString(&cfg.DefaultTrackTitle, "IMGBOARD_DEFAULT_TRACK_TITLE")
	setString(&cfg.DefaultArtist, "IMGBOARD_DEFAULT_ARTIST")
	setBool(&cfg.VotesRequireAuth, "IMGBOARD_VOTES_REQUIRE_AUTH")
	setString(&cfg.LogLevel, "IMGBOARD_LOG_LEVEL")
	setString(&cfg.LogFormat, "IMGBOARD_LOG_FORMAT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
