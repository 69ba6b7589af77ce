package config

import (
	"fmt"
	"os"

	"github.com/j2425716/facturador/internal/logger"
)

type Config struct {
	// Persistence
	DataFile   string // JSON snapshot with all finalized invoices
	InvoiceDir string // directory for rendered PDF artifacts

	// Rendering
	AssetsDir string // optional branding assets (logo.png)

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		DataFile:      getEnv("INVOICE_DATA_FILE", "facturas.json"),
		InvoiceDir:    getEnv("INVOICE_DIR", "facturas"),
		AssetsDir:     getEnv("ASSETS_DIR", "assets"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("INVOICE_DATA_FILE must not be empty")
	}
	if c.InvoiceDir == "" {
		return fmt.Errorf("INVOICE_DIR must not be empty")
	}
	if c.AssetsDir == "" {
		return fmt.Errorf("ASSETS_DIR must not be empty")
	}
	return nil
}

// EnsureDirs creates the artifact and assets directories if they do not exist.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.InvoiceDir, c.AssetsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
