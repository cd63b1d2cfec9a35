// Package config loads the connection parameters for the Salesforce CLI.
//
// Configuration is read from the environment exactly once at startup into an
// explicit Config value; no other package performs ambient lookups.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/core"
)

// Config holds the connection parameters for a single run.
type Config struct {
	// Username enables the password flow when set.
	Username string

	// InstanceURL, ConsumerKey and ConsumerSecret together enable the
	// OAuth client-credentials flow.
	InstanceURL    string
	ConsumerKey    string
	ConsumerSecret string

	// LoginURL is the SOAP login host for the password flow. Defaults to
	// the production login host; sandboxes use test.salesforce.com.
	LoginURL string

	TimeoutSeconds int
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() *Config {
	// Missing .env is fine; environment variables may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Username:       os.Getenv(core.EnvUsername),
		InstanceURL:    os.Getenv(core.EnvInstanceURL),
		ConsumerKey:    os.Getenv(core.EnvConsumerKey),
		ConsumerSecret: os.Getenv(core.EnvConsumerSecret),
		LoginURL:       os.Getenv(core.EnvLoginURL),
		TimeoutSeconds: core.DefaultTimeoutSecs,
	}

	if cfg.LoginURL == "" {
		cfg.LoginURL = core.DefaultLoginURL
	}

	if s := os.Getenv(core.EnvTimeout); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}

	return cfg
}

// HasClientCredentials reports whether the OAuth client-credentials flow is
// fully configured.
func (c *Config) HasClientCredentials() bool {
	return c.InstanceURL != "" && c.ConsumerKey != "" && c.ConsumerSecret != ""
}

// HasPassword reports whether the username/password flow is configured.
// Password and security token are collected interactively, so the username
// is the only required variable.
func (c *Config) HasPassword() bool {
	return c.Username != ""
}

// Validate ensures at least one authentication flow is usable. The returned
// error names the missing variables.
func (c *Config) Validate() error {
	if c.HasClientCredentials() || c.HasPassword() {
		return nil
	}

	// A partially configured OAuth flow deserves a precise message.
	if c.ConsumerKey != "" || c.ConsumerSecret != "" || c.InstanceURL != "" {
		missing := []string{}
		if c.InstanceURL == "" {
			missing = append(missing, core.EnvInstanceURL)
		}
		if c.ConsumerKey == "" {
			missing = append(missing, core.EnvConsumerKey)
		}
		if c.ConsumerSecret == "" {
			missing = append(missing, core.EnvConsumerSecret)
		}
		return fmt.Errorf("incomplete OAuth configuration: missing %v", missing)
	}

	return fmt.Errorf("missing %s environment variable (see .env.example for reference)", core.EnvUsername)
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
