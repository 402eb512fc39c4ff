// Package config loads the server settings from KDL files and the
// environment. Project settings override user settings, and environment
// variables override both, so secrets never have to live on disk.
package config

import (
	"fmt"
	"os"
	"time"
)

// Defaults applied before any config file is read.
const (
	DefaultBaseURL  = "https://api.pipedrive.com"
	DefaultAuthURL  = "https://oauth.pipedrive.com/oauth/authorize"
	DefaultTokenURL = "https://oauth.pipedrive.com/oauth/token"

	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
)

// Environment variables recognized as overrides.
const (
	EnvClientID     = "PIPEDRIVE_CLIENT_ID"
	EnvClientSecret = "PIPEDRIVE_CLIENT_SECRET"
	EnvRedirectURI  = "PIPEDRIVE_REDIRECT_URI"
	EnvBaseURL      = "PIPEDRIVE_API_BASE_URL"
	EnvTokenPath    = "PIPEDRIVE_TOKEN_PATH"
)

// Config is the merged server configuration.
type Config struct {
	// BaseURL is the upstream API root every endpoint path is joined to.
	BaseURL string

	// OAuth application settings.
	AuthURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// TokenPath is where the credential is persisted. Empty means the
	// per-user default location.
	TokenPath string

	// Listen is the address for the HTTP transport. Empty means stdio only.
	Listen string

	Timeout    time.Duration
	MaxRetries int
}

// NewConfig returns a config holding only defaults.
func NewConfig() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		AuthURL:    DefaultAuthURL,
		TokenURL:   DefaultTokenURL,
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
	}
}

// Load merges defaults, the user config file, the project config file in
// dir, and environment overrides, in that order.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if path := UserConfigPath(); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, fmt.Errorf("user config %s: %w", path, err)
		}
	}
	if err := cfg.mergeFile(ProjectConfigPath(dir)); err != nil {
		return nil, fmt.Errorf("project config: %w", err)
	}

	cfg.mergeEnv()
	return cfg, cfg.Validate()
}

// Validate checks the settings a running server cannot do without.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("api base-url must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max-retries must not be negative, got %d", c.MaxRetries)
	}
	return nil
}

func (c *Config) mergeEnv() {
	if v := os.Getenv(EnvClientID); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		c.ClientSecret = v
	}
	if v := os.Getenv(EnvRedirectURI); v != "" {
		c.RedirectURI = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvTokenPath); v != "" {
		c.TokenPath = v
	}
}
