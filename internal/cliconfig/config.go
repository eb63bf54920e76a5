package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultServiceURL is the default control-plane endpoint for corelink.
const DefaultServiceURL = "https://link.apphash.io"

// Config holds CLI configuration for the corelink daemon.
type Config struct {
	NodeID string

	ServiceURL string
	AuthKey    string

	HTTPTimeout       time.Duration
	HeartbeatInterval time.Duration

	// ShutdownGrace bounds how long driver teardown may take before the
	// daemon reports a timeout and retries.
	ShutdownGrace time.Duration

	// ShutdownAtExit arms the automatic shutdown hook instead of tying
	// teardown to the daemon's run scope.
	ShutdownAtExit bool

	// StateDir holds the session record (defaults to ~/.corelink).
	StateDir string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		NodeID:            "default",
		ServiceURL:        DefaultServiceURL,
		HTTPTimeout:       15 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		ShutdownGrace:     30 * time.Second,
		AuthKey:           os.Getenv("CORELINK_AUTH_KEY"),
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.AuthKey == "" {
		return fmt.Errorf("auth-key is required")
	}

	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}

	// Ensure no trailing slash
	if len(c.ServiceURL) > 0 && c.ServiceURL[len(c.ServiceURL)-1] == '/' {
		c.ServiceURL = c.ServiceURL[:len(c.ServiceURL)-1]
	}

	if c.StateDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			c.StateDir = filepath.Join(h, ".corelink")
		} else {
			c.StateDir = "."
		}
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive")
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat interval must be positive")
	}
	if c.ShutdownGrace < 0 {
		return fmt.Errorf("shutdown grace must not be negative")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
