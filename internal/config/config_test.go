package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsilveira/roteiros-api/internal/config"
)

// setRequired sets the two required variables so Load can succeed.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("SESSION_AUTH_KEY", "test-auth-key-must-be-32-bytes!!")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.SessionEncKey)
	assert.False(t, cfg.RunMigrations)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("SESSION_ENC_KEY", "test-enc-key-must-be-32-bytes!!!")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "test-enc-key-must-be-32-bytes!!!", cfg.SessionEncKey)
	assert.True(t, cfg.RunMigrations)
}

func TestLoad_MissingRequired(t *testing.T) {
	// t.Setenv with empty values both clears the variables for this test and
	// restores whatever the environment had afterwards.
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_AUTH_KEY", "")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "SESSION_AUTH_KEY")
}

func TestLoad_MissingOnlyAuthKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("SESSION_AUTH_KEY", "")

	_, err := config.Load()

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "SESSION_AUTH_KEY")
}
