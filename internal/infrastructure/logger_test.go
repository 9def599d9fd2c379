package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odatlas/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("stdout text logger", func(t *testing.T) {
		logger, closer, err := NewLogger(config.LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		})
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.NoError(t, closer())
	})

	t.Run("file output creates log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "odatlas.log")
		logger, closer, err := NewLogger(config.LoggingConfig{
			Level:  "debug",
			Format: "json",
			Output: "file",
			File:   path,
		})
		require.NoError(t, err)

		logger.Info("pipeline started", "stage", "loader")
		require.NoError(t, closer())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "pipeline started")
		assert.Contains(t, string(data), `"stage":"loader"`)
	})

	t.Run("debug level honored", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "odatlas.log")
		logger, closer, err := NewLogger(config.LoggingConfig{
			Level:  "warn",
			Format: "json",
			Output: "file",
			File:   path,
		})
		require.NoError(t, err)

		logger.Info("too quiet to appear")
		logger.Warn("loud enough")
		require.NoError(t, closer())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "too quiet to appear")
		assert.Contains(t, string(data), "loud enough")
	})
}
