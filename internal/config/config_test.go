package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/weiawesome/wes-io-live/gif-service/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8097, cfg.Server.Port)
	assert.Equal(t, "gif:search", cfg.Cache.Prefix)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "static", cfg.Settings.Driver)
	assert.Equal(t, "https://tenor.googleapis.com/v2", cfg.Provider.BaseURL)
	assert.Zero(t, cfg.Provider.Timeout)
	assert.Equal(t, "", cfg.Events.Driver)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "gif.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
cache:
  driver: memory
provider:
  client_key: from-file
  timeout: 3s
settings:
  driver: database
  database:
    driver: sqlite
    file_path: /tmp/settings.db
`), 0o644))

	t.Setenv(pkgconfig.EnvConfigFile, file)
	t.Setenv("TENOR_API_KEY", "env-key")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, "from-file", cfg.Provider.ClientKey)
	assert.Equal(t, "env-key", cfg.Provider.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "database", cfg.Settings.Driver)
	assert.Equal(t, "/tmp/settings.db", cfg.Settings.Database.FilePath)
}
