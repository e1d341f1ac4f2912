package config

import (
	"os"
	"strconv"
	"time"

	"clockifish/internal/errors"
)

// DefaultBaseURL is the production endpoint of the Clockify REST API.
const DefaultBaseURL = "https://api.clockify.me/api/v1"

// DefaultVersion is the version string reported by --version unless
// overridden via CLOCKIFISH_VERSION.
const DefaultVersion = "1.2.0"

// Credentials holds the API key and workspace scoping every request.
// Loaded once at startup and passed explicitly into the client.
type Credentials struct {
	APIKey      string `env:"CLOCKIFY_API_KEY"`
	WorkspaceID string `env:"CLOCKIFY_WORKSPACE_ID"`
}

// ClockifyConfig holds client-related configuration
type ClockifyConfig struct {
	BaseURL     string        `env:"CLOCKIFY_BASE_URL"`
	HTTPTimeout time.Duration `env:"CLOCKIFY_HTTP_TIMEOUT"`
	MaxRetries  int           `env:"CLOCKIFY_MAX_RETRIES"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Version string        `env:"CLOCKIFISH_VERSION"`
	Timeout time.Duration `env:"CLOCKIFISH_TIMEOUT"`
	Verbose bool          `env:"CLOCKIFISH_DEBUG"`
}

// Config holds all configuration options for the application
type Config struct {
	Credentials Credentials
	Clockify    ClockifyConfig
	Application ApplicationConfig
}

// NewConfig creates a new configuration with sensible defaults.
// Credentials have no defaults; they must come from the environment.
func NewConfig() *Config {
	return &Config{
		Clockify: ClockifyConfig{
			BaseURL:     DefaultBaseURL,
			HTTPTimeout: 30 * time.Second,
			MaxRetries:  0,
		},
		Application: ApplicationConfig{
			Version: DefaultVersion,
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Credentials
	if key := os.Getenv("CLOCKIFY_API_KEY"); key != "" {
		c.Credentials.APIKey = key
	}
	if ws := os.Getenv("CLOCKIFY_WORKSPACE_ID"); ws != "" {
		c.Credentials.WorkspaceID = ws
	}

	// Client configuration
	if base := os.Getenv("CLOCKIFY_BASE_URL"); base != "" {
		c.Clockify.BaseURL = base
	}
	if timeout := os.Getenv("CLOCKIFY_HTTP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Clockify.HTTPTimeout = d
		}
	}
	if retries := os.Getenv("CLOCKIFY_MAX_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil && n >= 0 {
			c.Clockify.MaxRetries = n
		}
	}

	// Application configuration
	if version := os.Getenv("CLOCKIFISH_VERSION"); version != "" {
		c.Application.Version = version
	}
	if timeout := os.Getenv("CLOCKIFISH_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("CLOCKIFISH_DEBUG"); verbose != "" {
		c.Application.Verbose = true
	}

	return nil
}

// Validate validates the configuration and returns any errors.
// A missing credential is fatal before any network call is attempted.
func (c *Config) Validate() error {
	if c.Credentials.APIKey == "" {
		return errors.NewMissingCredentialError("CLOCKIFY_API_KEY")
	}
	if c.Credentials.WorkspaceID == "" {
		return errors.NewMissingCredentialError("CLOCKIFY_WORKSPACE_ID")
	}
	if c.Clockify.BaseURL == "" {
		return errors.NewInvalidInputError("config", "CLOCKIFY_BASE_URL", "base URL cannot be empty")
	}
	if c.Clockify.HTTPTimeout <= 0 {
		return errors.NewInvalidInputError("config", "CLOCKIFY_HTTP_TIMEOUT", "timeout must be positive")
	}
	if c.Application.Timeout <= 0 {
		return errors.NewInvalidInputError("config", "CLOCKIFISH_TIMEOUT", "timeout must be positive")
	}
	return nil
}
