package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j2425716/facturador/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INVOICE_DATA_FILE", "")
	t.Setenv("INVOICE_DIR", "")
	t.Setenv("ASSETS_DIR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "facturas.json", cfg.DataFile)
	assert.Equal(t, "facturas", cfg.InvoiceDir)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INVOICE_DATA_FILE", "/tmp/data.json")
	t.Setenv("INVOICE_DIR", "/tmp/pdfs")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/data.json", cfg.DataFile)
	assert.Equal(t, "/tmp/pdfs", cfg.InvoiceDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INVOICE_DIR", filepath.Join(dir, "facturas"))
	t.Setenv("ASSETS_DIR", filepath.Join(dir, "assets"))

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.EnsureDirs())

	assert.DirExists(t, cfg.InvoiceDir)
	assert.DirExists(t, cfg.AssetsDir)

	// Idempotent on existing directories
	assert.NoError(t, cfg.EnsureDirs())
}

func TestGetLoggerConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	logCfg := cfg.GetLoggerConfig()
	assert.Equal(t, "warn", logCfg.Level)
	assert.Equal(t, "json", logCfg.Format)
}
