// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// APIKeyEnvVar names the environment variable holding the ScrapeBadger credential.
	APIKeyEnvVar = "SCRAPEBADGER_API_KEY"
	// defaultRequestTimeout is the default timeout for ScrapeBadger API requests.
	defaultRequestTimeout = 30 * time.Second
)

// Config represents the top-level application configuration. The credential is
// never stored here; it is read from the environment via APIKey.
type Config struct {
	BaseURL    string `json:"baseUrl,omitempty"`
	Timeout    int    `json:"timeout,omitempty"`
	LogFile    string `json:"logFile,omitempty"`
	Debug      bool   `json:"debug"`
	ConfigPath string `json:"-"`
}

// RequestTimeout returns the timeout duration for API requests, falling back
// to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// APIBaseURL returns the configured API endpoint, or "" for the client's
// production default.
func (c Config) APIBaseURL() string {
	return strings.TrimSpace(c.BaseURL)
}

// LogFilePath returns the path to the application log file. Empty means log to
// stderr only; stdout carries the protocol stream and must stay clean.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// APIKey reads the ScrapeBadger credential from the environment. The error
// message names the variable so operators can fix the configuration.
func APIKey() (string, error) {
	key := os.Getenv(APIKeyEnvVar)
	if key == "" {
		return "", fmt.Errorf("%s environment variable is required. Get your API key at https://scrapebadger.com", APIKeyEnvVar)
	}
	return key, nil
}
