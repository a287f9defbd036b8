package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"MONGO_URI", "MONGODB_URI", "PORT", "SERVER_PORT", "REDIS_HOST", "LOG_LEVEL", "DEVELOPMENT"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.MongoDB.URI)
	require.Equal(t, "sample_airbnb", cfg.MongoDB.Database)
	require.Equal(t, "listingsAndReviews", cfg.MongoDB.Collection)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, "5000", cfg.Server.Port)
	require.False(t, cfg.Server.Development)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.Redis.Addr())
	require.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "listings_test")
	t.Setenv("PORT", "8080")
	t.Setenv("DEVELOPMENT", "true")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("MONGODB_CONNECT_ATTEMPTS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "listings_test", cfg.MongoDB.Database)
	require.Equal(t, "8080", cfg.Server.Port)
	require.True(t, cfg.Server.Development)
	require.Equal(t, "localhost:6380", cfg.Redis.Addr())
	require.True(t, cfg.RateLimit.Enabled)
	require.InDelta(t, 2.5, cfg.RateLimit.RPS, 1e-9)
	require.Equal(t, 1, cfg.MongoDB.ConnectAttempts)
}

func TestLoadConfigMongoURIAlias(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
}
