package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "catalog")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "AVAILABLE", cfg.DefaultProductStatus)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"localhost:3000", "127.0.0.1:3000"}, cfg.CORSAllowedHosts)
}

func TestLoadMissingDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database configuration incomplete")
}

func TestLoadDefaultStatusOverride(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DEFAULT_PRODUCT_STATUS", "disabled")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "DISABLED", cfg.DefaultProductStatus)
}

func TestLoadInvalidDefaultStatus(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DEFAULT_PRODUCT_STATUS", "SOLD_OUT")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_PRODUCT_STATUS")
}

func TestLoadRedisEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadInvalidCacheTTL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_TTL")
}

func TestSplitHosts(t *testing.T) {
	hosts := splitHosts(" shop.example.com , localhost:3000,,API.Example.com ")
	assert.Equal(t, []string{"shop.example.com", "localhost:3000", "api.example.com"}, hosts)
}
