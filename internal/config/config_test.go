package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taekwondodev/go-role-login/internal/config"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
	"github.com/taekwondodev/go-role-login/internal/models"
)

func TestLoadDefaultsWithSQLite(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.SQLite, cfg.StoreDriver)
	assert.Equal(t, "data/users.db", cfg.SQLitePath)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
}

func TestLoadReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MONGODB_URI=mongodb://localhost:27017\nMONGODB_DATABASE=accounts\n"), 0o600))

	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("HTTP_ADDR", ":9090")
	// godotenv never overrides a set variable; t.Setenv restores them afterwards
	for _, key := range []string{"MONGODB_URI", "MONGODB_DATABASE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "accounts", cfg.Mongo.Database)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{"UnknownDriver", map[string]string{"STORE_DRIVER": "redis"}},
		{"PostgresWithoutUser", map[string]string{"STORE_DRIVER": "postgres", "POSTGRES_USER": "", "POSTGRES_DB": ""}},
		{"MongoWithoutURI", map[string]string{"STORE_DRIVER": "mongo", "MONGODB_URI": ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestPostgresConnString(t *testing.T) {
	cfg := config.PostgresConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret", Name: "users", SSLMode: "verify-full",
		SSLRootCert: "/certs/ca.crt",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=users sslmode=verify-full sslrootcert=/certs/ca.crt",
		cfg.ConnString(),
	)
}

func TestOpenUserRepositorySQLite(t *testing.T) {
	cfg := &config.Config{
		StoreDriver:  config.SQLite,
		StoreTimeout: 5 * time.Second,
		SQLitePath:   filepath.Join(t.TempDir(), "nested", "users.db"),
	}

	repo, err := config.OpenUserRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.SaveUser(ctx, &models.User{Username: "alice", Password: "correct", Role: models.RoleStaff}))

	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role)

	_, err = repo.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, customerrors.ErrUserNotFound)
}
