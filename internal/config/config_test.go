package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 1500*time.Millisecond, cfg.Latency.Search)
	assert.Equal(t, 800*time.Millisecond, cfg.Latency.Details)
	assert.Equal(t, 2*time.Second, cfg.Latency.Payment)
	assert.False(t, cfg.NeedsRedis())
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
log_level: debug
cache:
  enabled: true
  ttl: 1m
session:
  store: redis
latency:
  search: 10ms
rate_limit:
  requests_per_second: 2.5
  burst: 5
`), 0o600))

	t.Setenv("PORT", "7070")
	t.Setenv("SEARCH_LATENCY", "not-a-duration")
	t.Setenv("PAYMENT_LATENCY", "0s")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 10*time.Millisecond, cfg.Latency.Search)
	assert.Equal(t, time.Duration(0), cfg.Latency.Payment)
	assert.Equal(t, 800*time.Millisecond, cfg.Latency.Details)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.NeedsRedis())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SESSION_STORE", "etcd")
	_, err := Load("")
	assert.ErrorContains(t, err, "unknown session store")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: ["), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := Default()
	cfg.RateLimit.Burst = 0
	assert.Error(t, cfg.Validate())
}
