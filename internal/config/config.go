package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type StoreDriver string

const (
	Postgres StoreDriver = "postgres"
	SQLite   StoreDriver = "sqlite"
	MongoDB  StoreDriver = "mongo"
)

type PostgresConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	SSLRootCert string
}

func (p PostgresConfig) ConnString() string {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode,
	)
	if p.SSLRootCert != "" {
		connStr += " sslrootcert=" + p.SSLRootCert
	}
	return connStr
}

type MongoConfig struct {
	URI      string
	Database string
}

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string

	StoreDriver  StoreDriver
	StoreTimeout time.Duration
	Postgres     PostgresConfig
	SQLitePath   string
	Mongo        MongoConfig
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("STORE_DRIVER", string(Postgres))
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "data/users.db")
	v.SetDefault("MONGODB_DATABASE", "login")

	cfg := &Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		StoreDriver:     StoreDriver(v.GetString("STORE_DRIVER")),
		StoreTimeout:    v.GetDuration("STORE_TIMEOUT"),
		Postgres: PostgresConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("POSTGRES_USER"),
			Password:    v.GetString("POSTGRES_PASSWORD"),
			Name:        v.GetString("POSTGRES_DB"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			SSLRootCert: v.GetString("DB_SSLROOTCERT"),
		},
		SQLitePath: v.GetString("SQLITE_PATH"),
		Mongo: MongoConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case Postgres:
		if c.Postgres.User == "" || c.Postgres.Name == "" {
			return errors.New("POSTGRES_USER and POSTGRES_DB must be set for the postgres store")
		}
	case SQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH must be set for the sqlite store")
		}
	case MongoDB:
		if c.Mongo.URI == "" {
			return errors.New("MONGODB_URI must be set for the mongo store")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %q", c.StoreDriver)
	}

	if c.StoreTimeout <= 0 {
		return errors.New("STORE_TIMEOUT must be positive")
	}
	return nil
}
