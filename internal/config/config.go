package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the client configuration, read from REPVENDAS_* environment
// variables. Command-line flags may override individual fields.
type Config struct {
	// ServerURL is the base URL of the remote order API.
	ServerURL string `envconfig:"REPVENDAS_SERVER_URL" default:"http://localhost:5000/api"`

	// DBPath is the path of the local BoltDB file holding the offline
	// order queue and the catalog cache.
	DBPath string `envconfig:"REPVENDAS_DB_PATH" default:"repvendas.db"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"REPVENDAS_LOG_LEVEL" default:"info"`

	// HTTPTimeout bounds every request to the remote API. A timed-out
	// request counts as a transient failure and the order stays queued.
	HTTPTimeout time.Duration `envconfig:"REPVENDAS_HTTP_TIMEOUT" default:"30s"`

	// SyncBatch enables the bulk sync endpoint. The client falls back to
	// one-by-one submission when the server cannot report per-order
	// outcomes.
	SyncBatch bool `envconfig:"REPVENDAS_SYNC_BATCH" default:"true"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured level name onto a slog level. Unknown
// names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
