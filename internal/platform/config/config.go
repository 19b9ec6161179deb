// Package config collects every runtime setting into a single struct that is
// built once in main and injected into the components that need it.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DBConfig holds the MySQL connection settings.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string

	// InstanceConnectionName switches the DSN to a unix socket when the
	// server runs next to a managed Cloud SQL instance.
	InstanceConnectionName string
}

// Config holds all process-level configuration.
type Config struct {
	Port string

	DB            DBConfig
	RunMigrations bool

	JWTSecret string
	JWTExpiry time.Duration

	RedisAddr     string
	RedisPassword string

	FinnhubAPIKey  string
	FinnhubBaseURL string
	FinnhubTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and the environment.
// A missing market-data API key is logged but does not stop the process; the
// market routes will fail upstream instead.
func Load() Config {
	// .env 未配置（本番環境など）でも失敗させない
	_ = godotenv.Load()

	cfg := Config{
		Port: getenv("PORT", "5000"),
		DB: DBConfig{
			User:                   os.Getenv("DB_USER"),
			Password:               os.Getenv("DB_PASSWORD"),
			Host:                   getenv("DB_HOST", "127.0.0.1"),
			Port:                   getenv("DB_PORT", "3306"),
			Name:                   os.Getenv("DB_NAME"),
			InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		},
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: time.Hour,

		RedisAddr:     os.Getenv("REDIS_HOST") + ":" + getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		FinnhubAPIKey:  os.Getenv("FINNHUB_API_KEY"),
		FinnhubBaseURL: getenv("FINNHUB_BASE_URL", "https://finnhub.io/api/v1"),
		FinnhubTimeout: 10 * time.Second,
	}

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}
	if cfg.FinnhubAPIKey == "" {
		slog.Warn("FINNHUB_API_KEY is not set. Market data routes will return upstream errors.")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
