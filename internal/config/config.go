package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port int
	Env  string

	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string

	RedisAddr string

	EditorTokenSecret []byte
	EditorTokenTTL    time.Duration

	CORSAllowedOrigins []string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("EDITOR_TOKEN_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid EDITOR_TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		Port:               port,
		Env:                getEnv("APP_ENV", "production"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUsername:         os.Getenv("DB_USERNAME"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBDatabase:         os.Getenv("DB_DATABASE"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		EditorTokenSecret:  []byte(os.Getenv("EDITOR_TOKEN_SECRET")),
		EditorTokenTTL:     ttl,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	required := map[string]string{
		"DB_HOST":             cfg.DBHost,
		"DB_USERNAME":         cfg.DBUsername,
		"DB_PASSWORD":         cfg.DBPassword,
		"DB_DATABASE":         cfg.DBDatabase,
		"EDITOR_TOKEN_SECRET": string(cfg.EditorTokenSecret),
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// InitLogger builds the process logger: human-readable in development, JSON
// otherwise.
func InitLogger(cfg *Config) (*zap.Logger, error) {
	build := zap.NewProduction
	if cfg.IsDevelopment() {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
