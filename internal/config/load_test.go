package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Env-driven tests cannot run in parallel; t.Setenv enforces that.

const testDatabaseURL = "postgres://localhost:5432/storefront"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STOREFRONT_DATABASE_URL", testDatabaseURL)
	t.Setenv("STOREFRONT_AUTH_JWT_SECRET", "test-secret-key-thats-long-enough-for-hs256")
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when only required values are set", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, 1440, cfg.Auth.TokenLifetimeMinutes)
		assert.Equal(t, testDatabaseURL, cfg.Database.URL)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STOREFRONT_SERVER_PORT", "9090")
		t.Setenv("STOREFRONT_SERVER_LOG_LEVEL", "debug")
		t.Setenv("STOREFRONT_AUTH_TOKEN_LIFETIME_MINUTES", "60")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	})

	t.Run("missing database URL fails validation", func(t *testing.T) {
		t.Setenv("STOREFRONT_AUTH_JWT_SECRET", "test-secret-key-thats-long-enough-for-hs256")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("short JWT secret fails validation", func(t *testing.T) {
		t.Setenv("STOREFRONT_DATABASE_URL", testDatabaseURL)
		t.Setenv("STOREFRONT_AUTH_JWT_SECRET", "too-short")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("invalid log level fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STOREFRONT_SERVER_LOG_LEVEL", "verbose")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}
