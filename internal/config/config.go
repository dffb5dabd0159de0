package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alvesoscar517-cloud/portfolio/internal/scrollspy"
)

type Config struct {
	Port    string
	GinMode string

	LogLevel  slog.Level
	LogFormat string

	// Optional YAML file replacing the built-in content.
	ContentFile string
	StaticDir   string
	ImagesDir   string

	// Rendered into the page for the browser scroll spy.
	ScrollOffset float64

	ShutdownTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port:    envOr("PORT", "8080"),
		GinMode: envOr("GIN_MODE", "release"),

		LogLevel:  envLevel("LOG_LEVEL", slog.LevelInfo),
		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "text")),

		ContentFile: os.Getenv("CONTENT_FILE"),
		StaticDir:   envOr("STATIC_DIR", "./static"),
		ImagesDir:   envOr("IMAGES_DIR", "./images"),

		ScrollOffset: scrollspy.ParseOffset(os.Getenv("SCROLLSPY_OFFSET")),

		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q: must be debug, release or test", c.GinMode)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			return lvl
		}
	}
	return fallback
}
