package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "400_households.csv", cfg.Data.Households)
	assert.Equal(t, "400_transactions.csv", cfg.Data.Transactions)
	assert.Equal(t, "400_products.csv", cfg.Data.Products)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RETAILPULSE_LOGGING_LEVEL", "debug")
	t.Setenv("RETAILPULSE_DATA_DIR", "/srv/datasets")
	t.Setenv("RETAILPULSE_DATA_PRODUCTS", "products.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/srv/datasets", cfg.Data.Dir)
	assert.Equal(t, "products.xlsx", cfg.Data.Products)
	// Untouched fields keep their defaults.
	assert.Equal(t, "400_households.csv", cfg.Data.Households)
}

func TestLoadFromFileEnvWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "logging:\n  level: warn\ndata:\n  dir: /from/file\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("RETAILPULSE_CONFIG", path)
	t.Setenv("RETAILPULSE_DATA_DIR", "/from/env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/from/env", cfg.Data.Dir)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("RETAILPULSE_LOGGING_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingConfigFileFails(t *testing.T) {
	t.Setenv("RETAILPULSE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
