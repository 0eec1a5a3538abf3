package main

import (
	"context"
	"os"

	"github.com/spf13/pflag"
	"github.com/taekwondodev/go-role-login/internal/config"
	"github.com/taekwondodev/go-role-login/internal/logger"
	"github.com/taekwondodev/go-role-login/internal/seed"
)

func main() {
	file := pflag.StringP("file", "f", "users.json", "JSON array of {username, password, role} records")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", os.Stderr)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open seed file")
	}
	defer f.Close()

	records, err := seed.Decode(f)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read seed file")
	}

	ctx := context.Background()
	repo, err := config.OpenUserRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open user store")
	}
	defer repo.Close()

	report, err := seed.Seed(ctx, repo, records, log)
	if err != nil {
		log.Error().Err(err).Msg("seeding aborted")
		repo.Close()
		os.Exit(1)
	}

	log.Info().
		Int("created", len(report.Created)).
		Int("skipped", len(report.Skipped)).
		Int("invalid", len(report.Invalid)).
		Msg("seeding finished")
}
