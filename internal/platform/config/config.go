// Package config loads the process-wide configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backend selectors for Config.StoreBackend.
const (
	// StorePostgres selects the durable relational user store.
	StorePostgres = "postgres"
	// StoreMemory selects the ephemeral in-memory user store.
	StoreMemory = "memory"
)

// DBConfig holds the relational database connection parameters.
type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
}

// Config is the process-wide configuration. It is parsed once at startup
// and passed to the components that need it; nothing reads the environment
// after Load returns, and changing the secret invalidates every previously
// issued token.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	JWTSecret     string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiresIn  time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
	FrontendURL   string        `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	StoreBackend  string        `env:"STORE_BACKEND" envDefault:"postgres"`
	RunMigrations bool          `env:"RUN_MIGRATIONS" envDefault:"false"`
	DB            DBConfig
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
