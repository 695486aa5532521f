package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  path: "./test.db"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
admin:
  username: "admin"
  password: "secret"
`

func TestLoad(t *testing.T) {
	t.Run("Defaults are applied", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 720, cfg.JWT.AccessTokenExpiry)
		assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.DailySummary)
		assert.Equal(t, "UTC", cfg.Scheduler.Timezone)
		assert.Equal(t, int64(10), cfg.Storage.MaxFileSize)
		assert.False(t, cfg.Booking.BlockOnPending)
	})

	t.Run("DSN enables foreign keys", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)
		assert.Contains(t, cfg.GetDatabaseDSN(), "_foreign_keys=on")
		assert.Contains(t, cfg.GetDatabaseDSN(), "./test.db")
	})

	t.Run("Short JWT secret is rejected", func(t *testing.T) {
		bad := `
server:
  port: 8080
database:
  path: "./test.db"
jwt:
  secret: "short"
admin:
  username: "admin"
  password: "secret"
`
		_, err := Load(writeConfig(t, bad))
		assert.Error(t, err)
	})

	t.Run("Telegram needs a token when enabled", func(t *testing.T) {
		bad := minimalConfig + `
telegram:
  enabled: true
`
		_, err := Load(writeConfig(t, bad))
		assert.Error(t, err)
	})

	t.Run("Unknown timezone is rejected", func(t *testing.T) {
		bad := minimalConfig + `
scheduler:
  timezone: "Mars/Olympus_Mons"
`
		_, err := Load(writeConfig(t, bad))
		assert.Error(t, err)
	})

	t.Run("Environment overrides win", func(t *testing.T) {
		t.Setenv("DB_PATH", "/tmp/override.db")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)
		assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
