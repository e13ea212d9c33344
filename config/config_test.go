package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("SESSION_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.YouTubeAPIKey)
	assert.Equal(t, int64(MaxPageSize), cfg.PageSize)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFallsBackToAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.YouTubeAPIKey)
}

func TestLoadMissingKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("API_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadClampsPageSize(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "k")

	for _, v := range []string{"500", "0", "-3"} {
		t.Setenv("PAGE_SIZE", v)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, int64(MaxPageSize), cfg.PageSize, "PAGE_SIZE=%s", v)
	}

	t.Setenv("PAGE_SIZE", "20")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(20), cfg.PageSize)
}
