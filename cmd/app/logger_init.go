package main

import (
	"github.com/morrowland/archetype-report/internal/config"
	"github.com/morrowland/archetype-report/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
