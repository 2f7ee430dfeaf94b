package main

import (
	"net/http"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/koykov/distrib"
	"github.com/koykov/distrib/metrics/prometheus"
	"github.com/koykov/distrib/rng"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, fallback to info", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	pool := &rng.Pool{
		Config: &distrib.Config{
			Key:           cfg.MetricsKey,
			MetricsWriter: prometheus.NewWriter(cfg.MetricsKey),
			Logger:        logger,
		},
	}
	if cfg.Seed != 0 {
		var n atomic.Int64
		pool.New = func() distrib.Source {
			return distrib.NewLCG(cfg.Seed + n.Add(1) - 1)
		}
	}

	h := NewDistribHTTP(pool, cfg.MetricsKey, cfg.MaxDraws, logger)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.Routes(),
	}
	logger.Info("demo service started", "addr", cfg.Addr, "seed", cfg.Seed)
	if err = srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
