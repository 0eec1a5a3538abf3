// Package seed loads user records into a store. It is the only writer of
// user records; the login flow never mutates them.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/taekwondodev/go-role-login/internal/auth/repository"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
	"github.com/taekwondodev/go-role-login/internal/dto"
	"github.com/taekwondodev/go-role-login/internal/models"
)

type Report struct {
	Created []string
	Skipped []string
	Invalid []string
}

func Decode(r io.Reader) ([]dto.SeedRecord, error) {
	var records []dto.SeedRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode seed records: %w", err)
	}
	return records, nil
}

// Seed inserts every valid record whose username is not taken yet. A store
// failure stops the run; the report covers what happened before it.
func Seed(ctx context.Context, repo repository.UserRepository, records []dto.SeedRecord, logger zerolog.Logger) (*Report, error) {
	report := &Report{}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			logger.Warn().Err(err).Str("username", rec.Username).Msg("invalid seed record")
			report.Invalid = append(report.Invalid, rec.Username)
			continue
		}

		err := repo.CheckUserExists(ctx, rec.Username)
		if err == nil {
			err = repo.SaveUser(ctx, &models.User{
				Username: rec.Username,
				Password: rec.Password,
				Role:     rec.Role,
			})
		}

		switch {
		case err == nil:
			logger.Info().Str("username", rec.Username).Str("role", string(rec.Role)).Msg("user created")
			report.Created = append(report.Created, rec.Username)
		case errors.Is(err, customerrors.ErrUsernameAlreadyExists):
			logger.Info().Str("username", rec.Username).Msg("user already exists")
			report.Skipped = append(report.Skipped, rec.Username)
		default:
			return report, err
		}
	}

	return report, nil
}
