package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("GOOGLE_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "123:abc", cfg.BotToken)
	require.Equal(t, "key", cfg.GoogleAPIKey)
	require.Equal(t, 3000, cfg.NearbyRadiusMeters)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("NEARBY_RADIUS_METERS", "500")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 500, cfg.NearbyRadiusMeters)
	require.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "key")
	// t.Setenv registers the restore; unset to simulate a missing variable
	t.Setenv("BOT_TOKEN", "placeholder")
	os.Unsetenv("BOT_TOKEN")

	_, err := Load()
	require.Error(t, err)
}
