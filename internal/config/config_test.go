package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TOKEN", "token-de-test")
	t.Setenv("GUILD_ID", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("DEFAULT_LOCALE", "")
}

func TestLoadRequiresToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN", "  ")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/inscribot?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "fr", cfg.DefaultLocale)
	assert.Empty(t, cfg.GuildID)
}

func TestLoadRejectsNonNumericGuildID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GUILD_ID", "abc123")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "pas-une-url")

	_, err := Load()
	require.Error(t, err)
}
