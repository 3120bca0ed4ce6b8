// Package config loads bibfix settings from an optional YAML file and
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the per-directory configuration file name.
const ConfigFile = "bibfix.yaml"

// Config holds tunables that rarely change between runs. CLI flags
// take precedence over everything here.
type Config struct {
	// Endpoint overrides the search API URL (mirrors, tests).
	Endpoint string `yaml:"endpoint,omitempty"`
	// RateLimit is the maximum request rate toward the search API, in
	// requests per second. Zero keeps the client default.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
	// CachePath locates the response cache database.
	CachePath string `yaml:"cache_path,omitempty"`
	// ExtraPlaces extends the venue-city gazetteer used by location
	// extraction.
	ExtraPlaces []string `yaml:"extra_places,omitempty"`
}

// Load reads configuration: .env (if present), then ./bibfix.yaml (if
// present), then BIBFIX_* environment variables on top.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if data, err := os.ReadFile(ConfigFile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
		}
	}

	if v := os.Getenv("BIBFIX_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BIBFIX_RATE_LIMIT"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("BIBFIX_RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = rps
	}
	if v := os.Getenv("BIBFIX_CACHE"); v != "" {
		cfg.CachePath = v
	}

	if cfg.CachePath == "" {
		cfg.CachePath = defaultCachePath()
	}
	return cfg, nil
}

// defaultCachePath places the response cache under the user cache
// directory, falling back to the working directory.
func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".bibfix-cache.db"
	}
	return filepath.Join(dir, "bibfix", "responses.db")
}
