package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "CONTENT_FILE", "STATIC_DIR", "IMAGES_DIR", "SCROLLSPY_OFFSET", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Fatalf("Port = %q, Addr = %q", cfg.Port, cfg.Addr())
	}
	if cfg.ScrollOffset != 100 {
		t.Fatalf("ScrollOffset = %v, want 100", cfg.ScrollOffset)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("SCROLLSPY_OFFSET", "64")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CONTENT_FILE", "/etc/portfolio.yaml")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("LogFormat = %q", cfg.LogFormat)
	}
	if cfg.ScrollOffset != 64 {
		t.Fatalf("ScrollOffset = %v", cfg.ScrollOffset)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.ContentFile != "/etc/portfolio.yaml" {
		t.Fatalf("ContentFile = %q", cfg.ContentFile)
	}
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("SCROLLSPY_OFFSET", "-20")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := Load()

	if cfg.ScrollOffset != 100 {
		t.Fatalf("ScrollOffset = %v, want 100", cfg.ScrollOffset)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoadRejectsNonFiniteOffset(t *testing.T) {
	for _, v := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("SCROLLSPY_OFFSET", v)
			if got := Load().ScrollOffset; got != 100 {
				t.Fatalf("ScrollOffset = %v, want 100", got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8080", GinMode: "release", LogFormat: "text"}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"bad gin mode", func(c *Config) { c.GinMode = "prod" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
