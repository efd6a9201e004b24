package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration shared by the CLI and the dashboard.
type Config struct {
	BaseURL          string
	APIVersion       string
	RequestTimeout   time.Duration
	StoragePath      string
	DashboardAddr    string
	DashboardOrigins []string
	AdminToken       string
}

// Load reads .env (outside production) and returns a populated Config.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	timeout := 10 * time.Second
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	storagePath := strings.TrimSpace(os.Getenv("BIGBOY_STORAGE_PATH"))
	if storagePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("cannot determine home directory, set BIGBOY_STORAGE_PATH")
		}
		storagePath = filepath.Join(home, ".bigboy", "credentials")
	}

	return Config{
		BaseURL:          strings.TrimRight(envOrDefault("API_BASE_URL", "http://localhost:4000"), "/"),
		APIVersion:       envOrDefault("API_VERSION", "/api/v1"),
		RequestTimeout:   timeout,
		StoragePath:      storagePath,
		DashboardAddr:    envOrDefault("DASHBOARD_ADDR", ":8080"),
		DashboardOrigins: parseList("DASHBOARD_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		AdminToken:       strings.TrimSpace(os.Getenv("ADMIN_TOKEN")),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
