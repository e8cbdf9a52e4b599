package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 4000
database:
  driver: postgres
  host: db.internal
  username: adspark
  database: adspark_test
rateLimit:
  limit: 5
generator:
  provider: http
  endpoint: http://hooks.internal/generate
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("reads file values and fills defaults", func(t *testing.T) {
		dir := writeConfig(t, Test, testYAML)

		cfg, err := LoadConfigFrom(Test, dir)

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 4000, cfg.Server.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 5, cfg.RateLimit.Limit)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
		assert.Equal(t, "/api", cfg.RateLimit.PathPrefix)
		assert.Equal(t, "http", cfg.Generator.Provider)
		assert.Equal(t, 15*time.Second, cfg.Generator.Timeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
		assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	})

	t.Run("environment variables override file values", func(t *testing.T) {
		dir := writeConfig(t, Test, testYAML)
		t.Setenv("AS_DB_HOST", "override.internal")
		t.Setenv("AS_JWT_SECRET", "s3cret")
		t.Setenv("AS_RATE_LIMIT_LIMIT", "20")
		t.Setenv("AS_RATE_LIMIT_ENABLED", "false")

		cfg, err := LoadConfigFrom(Test, dir)

		require.NoError(t, err)
		assert.Equal(t, "override.internal", cfg.Database.Host)
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		assert.Equal(t, 20, cfg.RateLimit.Limit)
		assert.False(t, cfg.RateLimit.Enabled)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadConfigFrom(Production, t.TempDir())

		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: "5432", Username: "u", Password: "p", Database: "d", SSLMode: "disable"}

	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", c.DSN())
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("AS_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())

	t.Setenv("AS_ENV", "")
	assert.Equal(t, Development, getEnvironment())
}
