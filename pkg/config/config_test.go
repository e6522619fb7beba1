package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CatalogTTL)
	assert.Equal(t, 20, cfg.Recommendation.DefaultLimit)
	assert.Equal(t, 50, cfg.Recommendation.MaxLimit)
	assert.Equal(t, int64(15000), cfg.Recommendation.MaxPriceCents)
	assert.Equal(t, 0.5, cfg.Recommendation.ContentWeight)
	assert.Equal(t, 0.5, cfg.Recommendation.CollabWeight)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("RECO_CONTENT_WEIGHT", "0.7")
	t.Setenv("RECO_FETCH_TIMEOUT", "750ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 0.7, cfg.Recommendation.ContentWeight)
	assert.Equal(t, 750*time.Millisecond, cfg.Recommendation.FetchTimeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("DB_PASSWORD", "pw")
		_, err := Load()
		assert.EqualError(t, err, "missing jwt secret")
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_PASSWORD", "pw")
		t.Setenv("REDIS_DB", "zero")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid REDIS_DB")
	})

	t.Run("limits", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_PASSWORD", "pw")
		t.Setenv("RECO_DEFAULT_LIMIT", "60")
		_, err := Load()
		assert.Error(t, err)
	})
}
