package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

// Config holds application configuration
type Config struct {
	Port           string   `env:"PORT" envDefault:"5000"`
	DatabasePath   string   `env:"DATABASE_PATH" envDefault:"cafes.db"`
	GinMode        string   `env:"GIN_MODE" envDefault:"debug"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	DBLogLevel     string   `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.GormLogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Origins returns the CORS origins, always including the local frontend.
func (c *Config) Origins() []string {
	origins := []string{"http://localhost:3000"}
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// GormLogLevel maps DB_LOG_LEVEL onto gorm's logger levels.
func (c *Config) GormLogLevel() (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.DBLogLevel)) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn", "":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return 0, fmt.Errorf("unknown DB_LOG_LEVEL %q", c.DBLogLevel)
	}
}

// Release reports whether gin should run in release mode.
func (c *Config) Release() bool {
	return c.GinMode == "release"
}
