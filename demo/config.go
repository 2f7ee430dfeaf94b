package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config describes demo service params. Loads from environment.
type Config struct {
	Addr       string `env:"DISTRIB_DEMO_ADDR"        envDefault:":8080"`
	LogLevel   string `env:"DISTRIB_DEMO_LOG_LEVEL"   envDefault:"info"`
	MetricsKey string `env:"DISTRIB_DEMO_METRICS_KEY" envDefault:"demo"`
	// Upper limit of draws a single request may ask for (Bates n, total dice count).
	MaxDraws int `env:"DISTRIB_DEMO_MAX_DRAWS" envDefault:"10000"`
	// Seed of pooled providers. Zero means time-seeded MT19937.
	Seed int64 `env:"DISTRIB_DEMO_SEED"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
