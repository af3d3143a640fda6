// Package config provides application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port     int
	LogLevel string

	// Input guards enforced at the service boundary.
	MaxDiffLines   int // per side of a comparison
	MaxImagePixels int // width*height of an uploaded image
	MaxBodyBytes   int64

	HighlightStyle string // chroma style name for syntax highlighting

	// GitHub access (optional). Either a personal access token or a
	// full GitHub App credential set; the token wins when both are set.
	GitHubToken          string
	GitHubAppID          int64
	GitHubInstallationID int64
	GitHubPrivateKey     string // PEM file contents

	// OpenTelemetry (optional)
	OTelEnabled bool // OTEL_ENABLED feature flag
}

// GitHubConfigured reports whether any usable GitHub credential is present.
func (c Config) GitHubConfigured() bool {
	return c.GitHubToken != "" || c.GitHubAppID != 0
}

// Load reads configuration from environment variables, validates it, and
// applies defaults for everything optional.
func Load() (Config, error) {
	cfg := Config{
		Port:           8080,
		LogLevel:       "info",
		MaxDiffLines:   10000,
		MaxImagePixels: 40_000_000,
		MaxBodyBytes:   32 << 20, // 32 MiB, bounds image uploads
		HighlightStyle: "github",
	}

	if err := loadCoreConfig(&cfg); err != nil {
		return Config{}, err
	}

	if err := loadGitHubConfig(&cfg); err != nil {
		return Config{}, err
	}

	cfg.OTelEnabled = os.Getenv("OTEL_ENABLED") == "true"

	return cfg, nil
}

func loadCoreConfig(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HIGHLIGHT_STYLE"); v != "" {
		cfg.HighlightStyle = v
	}

	var err error
	if cfg.MaxDiffLines, err = parsePositiveInt("MAX_DIFF_LINES", cfg.MaxDiffLines); err != nil {
		return err
	}
	if cfg.MaxImagePixels, err = parsePositiveInt("MAX_IMAGE_PIXELS", cfg.MaxImagePixels); err != nil {
		return err
	}

	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid MAX_BODY_BYTES %q", v)
		}
		cfg.MaxBodyBytes = n
	}

	return nil
}

// loadGitHubConfig reads the optional GitHub credentials. A personal
// access token alone is enough; App credentials must come as a complete
// set.
func loadGitHubConfig(cfg *Config) error {
	cfg.GitHubToken = os.Getenv("GITHUB_TOKEN")

	appID := os.Getenv("GITHUB_APP_ID")
	installID := os.Getenv("GITHUB_INSTALLATION_ID")
	key := os.Getenv("GITHUB_PRIVATE_KEY")

	if appID == "" && installID == "" && key == "" {
		return nil // App auth not requested
	}
	if appID == "" || installID == "" || key == "" {
		return errors.New("GITHUB_APP_ID, GITHUB_INSTALLATION_ID, and GITHUB_PRIVATE_KEY must be set together")
	}

	var err error
	if cfg.GitHubAppID, err = strconv.ParseInt(appID, 10, 64); err != nil {
		return fmt.Errorf("invalid GITHUB_APP_ID %q: %w", appID, err)
	}
	if cfg.GitHubInstallationID, err = strconv.ParseInt(installID, 10, 64); err != nil {
		return fmt.Errorf("invalid GITHUB_INSTALLATION_ID %q: %w", installID, err)
	}
	cfg.GitHubPrivateKey = key

	return nil
}

func parsePositiveInt(envKey string, defaultValue int) (int, error) {
	v := os.Getenv(envKey)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", envKey, v)
	}
	return n, nil
}
