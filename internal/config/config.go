package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	APIBaseURL    string
	SessionSecret string
	StoreDSN      string
	Env           string
	CacheTTL      time.Duration
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.APIBaseURL = getEnv("API_BASE_URL", "https://api.insulhub.nz")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "devsessionsecret")
	cfg.StoreDSN = getEnv("STORE_DSN", "file:insulhub.db?cache=shared")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.CacheTTL = time.Duration(getEnvInt("CACHE_TTL_MINUTES", 5)) * time.Minute
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}
