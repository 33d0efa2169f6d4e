package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "taskboard.db", cfg.Database.DSN)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 600, cfg.RateLimit.RequestsPerMin)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost/taskboard")
	t.Setenv("DATABASE_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("HTTP_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost/taskboard", cfg.Database.DSN)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
}

func TestLoadFromFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := "database:\n  driver: sqlite\n  dsn: from-file.db\nrate_limit:\n  requests_per_min: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ENVIRONMENT_NAME=production\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ENVIRONMENT_NAME") })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file.db", cfg.Database.DSN)
	assert.Equal(t, 0, cfg.RateLimit.RequestsPerMin)
	assert.Equal(t, "production", cfg.Environment.Name)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT_NAME", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
