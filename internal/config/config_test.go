package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  address: ":9090"
database:
  name: "studio_test"
jwt:
  secret: "file-secret"
  expiration: "90m"
builder:
  id_source: "counter"
s3:
  bucket_name: "form-videos"
log:
  level: "debug"
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "studio_test", cfg.Database.Name)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, 90*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, IDSourceCounter, cfg.Builder.IDSource)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.S3.URLExpiry)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "jwt:\n  secret: \"file-secret\"\n")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_ADDRESS", ":7070")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "only-env")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, IDSourceUUID, cfg.Builder.IDSource)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "jwt.secret")

	dir := writeConfig(t, "jwt:\n  secret: \"s\"\nbuilder:\n  id_source: \"clock\"\n")
	_, err = LoadConfig(dir)
	assert.ErrorContains(t, err, "builder.id_source")

	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	_, err = LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "database.driver")
}
