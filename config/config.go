package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the service.
type Config struct {
	Port          string
	DBDriver      string // postgres or duckdb
	DatabaseURL   string
	DBPath        string
	LogLevel      string
	AuthUser      string
	AuthPass      string
	CacheTTL      time.Duration
	RateLimitRPS  float64
	ProrateCredit bool
}

// Load reads an optional .env file and then the environment, falling back to
// defaults for anything unset or malformed.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using environment", "error", err)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "duckdb"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBPath:        getEnv("DB_PATH", "./data/commissions.duckdb"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AuthUser:      getEnv("AUTH_USER", ""),
		AuthPass:      getEnv("AUTH_PASS", ""),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		RateLimitRPS:  getEnvAsFloat("RATE_LIMIT_RPS", 20),
		ProrateCredit: getEnvAsBool("PRORATE_CREDIT", false),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getEnvAsFloat(key string, fallback float64) float64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvAsBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}
