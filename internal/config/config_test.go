package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("logging defaults = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg := FromEnv()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("logging = %q/%q, want debug/json", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestFromEnvIgnoresBadPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	if cfg := FromEnv(); cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want default %d", cfg.Port, DefaultPort)
	}
}

func TestServerURL(t *testing.T) {
	t.Setenv(EnvServerURL, "http://remote:9000")
	if got := ServerURL(); got != "http://remote:9000" {
		t.Errorf("ServerURL() = %q", got)
	}

	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvPort, "4000")
	if got := ServerURL(); got != "http://localhost:4000" {
		t.Errorf("ServerURL() = %q, want http://localhost:4000", got)
	}
}
