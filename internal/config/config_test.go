package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "MONGO_URI", "MONGO_DB", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "azul", cfg.MongoDB)
	require.Equal(t, 100, cfg.RateLimitRequests)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MONGO_MAX_POOL", "20")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "12")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.True(t, cfg.IsProduction())
	require.Equal(t, uint64(20), cfg.MongoMaxPool)
	require.Equal(t, 12*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_ZeroDurationsFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "0")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")
	t.Setenv("MONGO_TIMEOUT_SECONDS", "-1")

	cfg := Load()
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 10*time.Second, cfg.MongoTimeout)
}

func TestLoad_MalformedNumberFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "lots")
	t.Setenv("MONGO_MIN_POOL", "-3")

	cfg := Load()
	require.Equal(t, 100, cfg.RateLimitRequests)
	require.Equal(t, uint64(5), cfg.MongoMinPool)
}
