package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/xyz-asif/azul/internal/pkg/logger"
)

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	FrontendURL string
	LogLevel    string

	MongoTimeout time.Duration
	MongoMaxPool uint64
	MongoMinPool uint64

	RateLimitRequests int
	RateLimitWindow   time.Duration
	ShutdownTimeout   time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		logger.Info("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "azul"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		MongoTimeout: getSeconds("MONGO_TIMEOUT_SECONDS", 10),
		MongoMaxPool: uint64(getInt("MONGO_MAX_POOL", 100)),
		MongoMinPool: uint64(getInt("MONGO_MIN_POOL", 5)),

		RateLimitRequests: getInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getSeconds("RATE_LIMIT_WINDOW_SECONDS", 60),
		ShutdownTimeout:   getSeconds("SHUTDOWN_TIMEOUT_SECONDS", 5),
	}
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		logger.Warn("Invalid numeric config value, using default", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return n
}

// getSeconds reads a duration in whole seconds. Durations must be positive.
func getSeconds(key string, defaultValue int) time.Duration {
	n := getInt(key, defaultValue)
	if n == 0 {
		logger.Warn("Zero duration config value, using default", "key", key, "default", defaultValue)
		n = defaultValue
	}
	return time.Duration(n) * time.Second
}
