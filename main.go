package main

import (
	"context"
	"os"

	"github.com/taekwondodev/go-role-login/internal/api"
	"github.com/taekwondodev/go-role-login/internal/auth/controller"
	"github.com/taekwondodev/go-role-login/internal/auth/service"
	"github.com/taekwondodev/go-role-login/internal/config"
	"github.com/taekwondodev/go-role-login/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", os.Stderr)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	authRepo, err := config.OpenUserRepository(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", string(cfg.StoreDriver)).Msg("could not open user store")
	}
	defer func() {
		if err := authRepo.Close(); err != nil {
			log.Error().Err(err).Msg("could not close user store")
		}
	}()
	log.Info().Str("driver", string(cfg.StoreDriver)).Msg("user store connected")

	authService := service.NewAuthService(authRepo, cfg.StoreTimeout, log)
	authController := controller.NewAuthController(authService)

	router := api.SetupRoutes(authController, log)
	server := api.NewServer(cfg.HTTPAddr, router, cfg.ShutdownTimeout, log)

	if err := server.StartWithGracefulShutdown(); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
