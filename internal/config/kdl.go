package config

import (
	"os"
	"path/filepath"
	"time"

	kdl "github.com/sblinch/kdl-go"
)

const (
	ProjectConfigFile = ".pipedrive-mcp.kdl"
	UserConfigDir     = "pipedrive-mcp"
	UserConfigFile    = "config.kdl"
)

// kdlConfig is the raw KDL structure for unmarshaling.
type kdlConfig struct {
	API   *kdlAPI   `kdl:"api"`
	OAuth *kdlOAuth `kdl:"oauth"`
}

type kdlAPI struct {
	BaseURL    string `kdl:"base-url"`
	Listen     string `kdl:"listen"`
	Timeout    string `kdl:"timeout"`
	MaxRetries *int   `kdl:"max-retries"`
}

type kdlOAuth struct {
	ClientID     string `kdl:"client-id"`
	ClientSecret string `kdl:"client-secret"`
	RedirectURI  string `kdl:"redirect-uri"`
	TokenPath    string `kdl:"token-path"`
}

// UserConfigPath returns the path to the user config file.
func UserConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, UserConfigDir, UserConfigFile)
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFile)
}

// mergeFile overlays settings from a KDL file onto the config. A missing
// file is not an error.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.mergeKDL(data)
}

func (c *Config) mergeKDL(data []byte) error {
	var raw kdlConfig
	if err := kdl.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.API != nil {
		if raw.API.BaseURL != "" {
			c.BaseURL = raw.API.BaseURL
		}
		if raw.API.Listen != "" {
			c.Listen = raw.API.Listen
		}
		if raw.API.Timeout != "" {
			d, err := time.ParseDuration(raw.API.Timeout)
			if err != nil {
				return err
			}
			c.Timeout = d
		}
		if raw.API.MaxRetries != nil {
			c.MaxRetries = *raw.API.MaxRetries
		}
	}

	if raw.OAuth != nil {
		if raw.OAuth.ClientID != "" {
			c.ClientID = raw.OAuth.ClientID
		}
		if raw.OAuth.ClientSecret != "" {
			c.ClientSecret = raw.OAuth.ClientSecret
		}
		if raw.OAuth.RedirectURI != "" {
			c.RedirectURI = raw.OAuth.RedirectURI
		}
		if raw.OAuth.TokenPath != "" {
			c.TokenPath = raw.OAuth.TokenPath
		}
	}

	return nil
}
