// Package db opens the gorm database connection for the service.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/platform/config"
)

const (
	// connectTimeout bounds how long startup waits for the database.
	connectTimeout = 60 * time.Second
	// retryInterval is the pause between connection attempts.
	retryInterval = 3 * time.Second
)

// Opener opens a gorm connection for a DSN. Injectable for tests.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN assembles a Postgres DSN from the database configuration.
func BuildDSN(cfg config.DBConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// ConnectWithRetry keeps opening the connection until it succeeds or the
// timeout elapses. Databases routinely come up after the service in
// container environments.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying...", "error", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to Postgres and optionally runs migrations.
// TranslateError lets the user store map unique violations portably.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	open := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	db, err := ConnectWithRetry(BuildDSN(cfg.DB), connectTimeout, open)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
