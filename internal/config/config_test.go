package config

import (
	"context"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, vars map[string]string) (Config, error) {
	t.Helper()
	return Parse(env.Options{Environment: vars})
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parseWith(t, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Cache.Caches("GET"))
	assert.False(t, cfg.Cache.Caches("POST"))
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)

	assert.False(t, cfg.RateLimit.Enabled, "rate limiting is opt-in")
	assert.Equal(t, 60, cfg.RateLimit.Capacity)
	assert.Equal(t, "ip_route", cfg.RateLimit.KeyStrategy)

	assert.False(t, cfg.Queue.Enabled)
	assert.Equal(t, "catalog.seeded", cfg.Queue.CatalogQueue)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parseWith(t, map[string]string{
		"APP_PORT":             "9000",
		"LOG_LEVEL":            "debug",
		"CORS_ALLOWED_ORIGINS": "https://monastery360.example",
		"CACHE_METHODS":        "get, head",
		"RATE_LIMIT_CAPACITY":  "0",
		"RATE_LIMIT_TTL":       "1s",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://monastery360.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Cache.Caches("HEAD"))
	assert.Equal(t, 1, cfg.RateLimit.Capacity, "capacity is clamped to 1")
	assert.Equal(t, 5*time.Second, cfg.RateLimit.TTL, "ttl is at least five refill intervals")
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "port out of range", vars: map[string]string{"APP_PORT": "70000"}},
		{name: "port not a number", vars: map[string]string{"APP_PORT": "http"}},
		{name: "unknown log level", vars: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "bad duration", vars: map[string]string{"CACHE_TTL": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWith(t, tt.vars)
			assert.Error(t, err)
		})
	}
}

func TestValidateQueueNeedsName(t *testing.T) {
	cfg, err := parseWith(t, map[string]string{"QUEUE_ENABLED": "true"})
	require.NoError(t, err)

	cfg.Queue.CatalogQueue = ""
	assert.Error(t, cfg.Validate())
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), RedisConfig{Enabled: false})
	assert.NoError(t, err)
	assert.Nil(t, client)
}
