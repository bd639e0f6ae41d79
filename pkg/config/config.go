// Package config gathers the static settings the application reads once at
// startup: Spotify API credentials, the recommendation service URL and the
// listen address. Values come from the environment, optionally layered over a
// YAML secrets file so deployments can keep credentials out of the process
// environment. After Load returns the configuration is read-only; validation
// failures are fatal at startup, never discovered mid-request.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the environment nor the secrets file provides
// a value.
const (
	DefaultRecommendURL = "http://127.0.0.1:8000/recommend/"
	DefaultAddr         = ":4000"
)

// Config holds all settings the application needs. It is constructed once in
// main and passed by value; nothing mutates it afterwards.
type Config struct {
	SpotifyClientID     string `yaml:"spotify_client_id"`
	SpotifyClientSecret string `yaml:"spotify_client_secret"`
	// RecommendURL is the base URL of the external recommendation service.
	RecommendURL string `yaml:"recommend_url"`
	// Addr is the address the HTTP server listens on.
	Addr string `yaml:"addr"`
}

// Load builds a Config from the environment. A .env file in the working
// directory is honoured when present (godotenv does not override variables
// that are already set). If secretsPath is non-empty the YAML file it names
// is read first and environment variables override its values. The returned
// error reports file problems only; credential validation is separate so
// callers control the fatal path.
func Load(secretsPath string) (Config, error) {
	// Ignore a missing .env; it is a development convenience, not a
	// requirement.
	_ = godotenv.Load()

	cfg := Config{
		RecommendURL: DefaultRecommendURL,
		Addr:         DefaultAddr,
	}

	if secretsPath != "" {
		data, err := os.ReadFile(secretsPath)
		if err != nil {
			return Config{}, fmt.Errorf("read secrets file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse secrets file: %w", err)
		}
	}

	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		cfg.SpotifyClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		cfg.SpotifyClientSecret = v
	}
	if v := os.Getenv("API_URL"); v != "" {
		cfg.RecommendURL = v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	return cfg, nil
}

// Validate checks that both credential secrets are present. The error names
// the first missing secret so the operator knows exactly what to provide.
// Missing credentials are a fatal startup condition.
func (c Config) Validate() error {
	if c.SpotifyClientID == "" {
		return fmt.Errorf("missing secret: SPOTIFY_CLIENT_ID")
	}
	if c.SpotifyClientSecret == "" {
		return fmt.Errorf("missing secret: SPOTIFY_CLIENT_SECRET")
	}
	return nil
}
