package config

import (
	"context"
	"fmt"

	"github.com/taekwondodev/go-role-login/internal/auth/repository"
)

// OpenUserRepository connects the configured store and prepares its schema.
func OpenUserRepository(ctx context.Context, cfg *Config) (repository.UserRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	switch cfg.StoreDriver {
	case Postgres:
		db, err := NewPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := repository.InitSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return repository.NewUserRepository(db), nil

	case SQLite:
		db, err := NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := repository.InitSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return repository.NewUserRepository(db), nil

	case MongoDB:
		client, err := NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		repo := repository.NewMongoUserRepository(client, cfg.Mongo.Database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			repo.Close()
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %q", cfg.StoreDriver)
	}
}
