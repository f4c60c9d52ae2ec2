// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvPort      = "BOOKD_PORT"
	EnvServerURL = "BOOKD_SERVER_URL"
	EnvLogLevel  = "BOOKD_LOG_LEVEL"
	EnvLogFormat = "BOOKD_LOG_FORMAT"
)

// DefaultPort is the port the API listens on when nothing else is configured.
const DefaultPort = 3000

// Config holds the service configuration.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:      DefaultPort,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// FromEnv returns the default configuration with environment overrides
// applied. Unparseable values are ignored rather than fatal.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}

// ServerURL returns the base URL management commands use to reach a running
// server: BOOKD_SERVER_URL when set, otherwise localhost on the configured port.
func ServerURL() string {
	if v := os.Getenv(EnvServerURL); v != "" {
		return v
	}
	return fmt.Sprintf("http://localhost:%d", FromEnv().Port)
}
