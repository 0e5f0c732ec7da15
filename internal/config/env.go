package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConf holds process settings read from the environment.
// Command-line flags in cmd/server take precedence.
type ServerConf struct {
	Addr            string        `env:"TRACE_ADDR" envDefault:":8000"`
	CatalogPath     string        `env:"TRACE_CATALOG"` // empty = embedded catalog
	CORSOrigins     []string      `env:"TRACE_CORS_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel        string        `env:"TRACE_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"TRACE_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// LoadServerConf parses ServerConf from the process environment.
func LoadServerConf() (ServerConf, error) {
	var c ServerConf
	if err := env.Parse(&c); err != nil {
		return ServerConf{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c ServerConf) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
