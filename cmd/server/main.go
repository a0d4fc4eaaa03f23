package main

import (
	"log/slog"
	"os"

	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	"auth_backend/internal/platform/db"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/platform/password"
)

func main() {
	// Configuration, loaded once and passed down; nothing reads the
	// environment after this point.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Repository
	var userRepo authusecase.UserRepository
	switch cfg.StoreBackend {
	case config.StoreMemory:
		slog.Warn("using in-memory user store; users will not survive a restart")
		userRepo = authadapters.NewUserMemory()
	default:
		gormDB, err := db.OpenDB(cfg)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		userRepo = authadapters.NewUserGorm(gormDB)
	}

	// Platform services
	tokens := jwtmw.NewManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	hasher := password.NewBcrypt()

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, hasher)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	r := router.NewRouter(authH, tokens, cfg.FrontendURL)

	slog.Info("starting server", "port", cfg.Port, "store", cfg.StoreBackend)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
