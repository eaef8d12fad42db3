package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray .env is read.
func chdirTemp(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./roster.db", cfg.DatabaseDSN)
	assert.Equal(t, "127.0.0.1:3001", cfg.HTTPAddr)
	assert.Equal(t, "resources/migrations", cfg.MigrationsDir)
	assert.Equal(t, 20.0, cfg.RateLimit)
	assert.Equal(t, 40, cfg.RateBurst)
	assert.Empty(t, cfg.SentryDSN)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ROSTER_DB_DSN", "/var/lib/roster/roster.db")
	t.Setenv("ROSTER_HTTP_ADDR", ":8080")
	t.Setenv("ROSTER_RATE_LIMIT", "2.5")
	t.Setenv("ROSTER_RATE_BURST", "5")
	t.Setenv("ROSTER_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/roster/roster.db", cfg.DatabaseDSN)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("ROSTER_DB_DSN=dotenv.db\nROSTER_ENVIRONMENT=staging\n"),
		0o600,
	))
	t.Setenv("ROSTER_ENVIRONMENT", "ci")
	// godotenv sets what it loads, register it for cleanup.
	t.Setenv("ROSTER_DB_DSN", "")
	require.NoError(t, os.Unsetenv("ROSTER_DB_DSN"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dotenv.db", cfg.DatabaseDSN)
	assert.Equal(t, "ci", cfg.Environment, "environment must take precedence")
}

func TestLoadInvalid(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ROSTER_RATE_BURST", "abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		DatabaseDSN:   "",
		HTTPAddr:      "localhost",
		MigrationsDir: "",
		RateLimit:     0,
		RateBurst:     0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	for _, v := range []string{
		"ROSTER_DB_DSN", "ROSTER_HTTP_ADDR", "ROSTER_MIGRATIONS_DIR",
		"ROSTER_RATE_LIMIT", "ROSTER_RATE_BURST",
	} {
		assert.Contains(t, err.Error(), v)
	}

	cfg = Config{
		DatabaseDSN:   "roster.db",
		HTTPAddr:      "127.0.0.1:3001",
		MigrationsDir: "resources/migrations",
		RateLimit:     1,
		RateBurst:     1,
	}
	assert.NoError(t, cfg.Validate())
}
