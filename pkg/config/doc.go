// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. The
// default .env file in the working directory is read once, if present, and
// the environment is parsed into any struct annotated with env tags:
//
//	type Config struct {
//	    LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
//	    PriceDelay time.Duration `env:"PRICE_DELAY" envDefault:"3s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMKIT_")); err != nil {
//	    return err
//	}
//
// Successfully loaded values are cached per type and prefix, so repeated
// calls are cheap. ResetCache clears the cache in tests; LoadEnv reads extra
// .env files explicitly.
package config
