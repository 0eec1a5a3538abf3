package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

func NewPostgres(ctx context.Context, cfg PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "certificate") {
			return nil, fmt.Errorf("postgres SSL verification failed: %w", err)
		}
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
