package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"LIBRARY_STORAGE", "LIBRARY_DATA_FILE",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DB", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_MAX_CONN",
	"LOG_FILE", "LOG_CONTROLLER_ENABLED", "LOG_USECASE_ENABLED", "LOG_REPO_ENABLED",
	"METRICS_PORT",
}

// clearEnv unsets every config variable for the test and returns a .env
// path that does not exist yet.
func clearEnv(t *testing.T) string {
	t.Helper()

	for _, name := range configEnv {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	return filepath.Join(t.TempDir(), ".env")
}

func TestNewConfigDefaults(t *testing.T) {
	envFile := clearEnv(t)

	cfg, err := newConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, StorageJSON, cfg.Storage.Kind)
	assert.Equal(t, "data/books.json", cfg.Storage.DataFile)
	assert.Equal(t, "logs/library.log", cfg.Log.File)
	assert.Equal(t, "10", cfg.PG.MaxConn)
	assert.True(t, cfg.Log.LogController)
	assert.True(t, cfg.Log.LogUseCase)
	assert.True(t, cfg.Log.LogRepo)
	assert.Empty(t, cfg.Observability.MetricsPort)
}

func TestNewConfigFromEnv(t *testing.T) {
	envFile := clearEnv(t)

	t.Setenv("LIBRARY_STORAGE", "postgres")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_DB", "library")
	t.Setenv("POSTGRES_USER", "reader")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_MAX_CONN", "4")
	t.Setenv("LOG_REPO_ENABLED", "false")
	t.Setenv("METRICS_PORT", "9000")

	cfg, err := newConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage.Kind)
	assert.Equal(t, "postgres://reader:secret@db:5432/library?sslmode=disable&pool_max_conns=4", cfg.PG.URL)
	assert.False(t, cfg.Log.LogRepo)
	assert.True(t, cfg.Log.LogUseCase)
	assert.Equal(t, "9000", cfg.Observability.MetricsPort)
}

func TestNewConfigEnvFile(t *testing.T) {
	envFile := clearEnv(t)

	content := "LIBRARY_DATA_FILE=/srv/books.json\nLOG_CONTROLLER_ENABLED=false\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("LOG_CONTROLLER_ENABLED", "true")

	cfg, err := newConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/srv/books.json", cfg.Storage.DataFile)
	assert.True(t, cfg.Log.LogController)
}

func TestNewConfigUnknownStorage(t *testing.T) {
	envFile := clearEnv(t)
	t.Setenv("LIBRARY_STORAGE", "sqlite")

	_, err := newConfig(envFile)
	require.ErrorIs(t, err, ErrUnknownStorage)
}
