package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv         string
	Port           string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins string

	// Simulated latencies and timer intervals. Tests set these to zero or
	// drive them through a manual scheduler.
	AuthDelay       time.Duration
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
	ToastDuration   time.Duration
	MarketInterval  time.Duration
	AccrualInterval time.Duration
}

func Load() Config {
	return Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:        getMinutes("TOKEN_TTL_MINUTES", 60),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		AuthDelay:       getMillis("AUTH_DELAY_MS", 1500),
		ProcessingDelay: getMillis("PROCESSING_DELAY_MS", 2000),
		SuccessDelay:    getMillis("SUCCESS_DELAY_MS", 1500),
		ToastDuration:   getMillis("TOAST_DURATION_MS", 3000),
		MarketInterval:  getMillis("MARKET_INTERVAL_MS", 3000),
		AccrualInterval: getMillis("ACCRUAL_INTERVAL_MS", 5000),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getMinutes(key string, fallbackMinutes int) time.Duration {
	return time.Duration(getInt(key, fallbackMinutes)) * time.Minute
}

func getMillis(key string, fallbackMillis int) time.Duration {
	return time.Duration(getInt(key, fallbackMillis)) * time.Millisecond
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
