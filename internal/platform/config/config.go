package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures configuration for the validation HTTP service.
type Server struct {
	Addr            string        `env:"SWEDISHID_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SWEDISHID_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"SWEDISHID_METRICS_ENABLED" envDefault:"true"`

	Log        Log
	Validation Validation
}

// Log selects the slog handler.
type Log struct {
	Level  string `env:"SWEDISHID_LOG_LEVEL" envDefault:"info"`
	Format string `env:"SWEDISHID_LOG_FORMAT" envDefault:"json"`
}

// Validation bounds batch requests.
type Validation struct {
	BatchLimit   int `env:"SWEDISHID_BATCH_LIMIT" envDefault:"100"`
	BatchWorkers int `env:"SWEDISHID_BATCH_WORKERS" envDefault:"8"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (c Server) validate() error {
	if c.Validation.BatchLimit < 1 {
		return fmt.Errorf("SWEDISHID_BATCH_LIMIT must be positive, got %d", c.Validation.BatchLimit)
	}
	if c.Validation.BatchWorkers < 1 {
		return fmt.Errorf("SWEDISHID_BATCH_WORKERS must be positive, got %d", c.Validation.BatchWorkers)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("SWEDISHID_LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}
	return nil
}
