package main

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Config is read from FORMKIT_* environment variables and .env files.
type Config struct {
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`
	PriceDelay    time.Duration `env:"PRICE_DELAY" envDefault:"100ms"`
	InvalidPolicy string        `env:"INVALID_POLICY" envDefault:"any"`
}

const envPrefix = "FORMKIT_"

func loadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	if err := config.LoadEnv(envFiles...); err != nil {
		return cfg, err
	}
	err := config.Load(&cfg, config.WithPrefix(envPrefix))
	return cfg, err
}

func (c Config) policy() (form.Policy, error) {
	return form.ParsePolicy(c.InvalidPolicy)
}

func (c Config) logger(verbose bool) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(c.LogFormat)),
		logger.WithAttr(slog.String("app", "formscript")),
	), nil
}
