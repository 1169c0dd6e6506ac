package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/level"
	"github.com/katalvlaran/lvmaze/logger"
	"github.com/katalvlaran/lvmaze/placement"
	"github.com/katalvlaran/lvmaze/store"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, level.Default(), cfg.Levels)
}

func TestLoad_PartialFile(t *testing.T) {
	path := writeFile(t, `
logging:
  level: DEBUG
  console_format: json
store:
  sqlite_path: /tmp/runs.db
levels:
  - name: warmup
    width: 10
    height: 8
    algorithm: edge-selection
    strategy: corner-to-corner
    time_limit: 30s
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, logger.FormatJSON, cfg.Logging.ConsoleFormat)
	assert.True(t, cfg.Logging.ConsoleEnabled, "absent keys keep their defaults")
	assert.Equal(t, 10, cfg.Logging.FileMaxSizeMB)

	assert.Equal(t, store.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/runs.db", cfg.Store.SQLitePath)

	require.Len(t, cfg.Levels, 1)
	assert.Equal(t, level.Level{
		Name:      "warmup",
		Width:     11,
		Height:    9,
		Algorithm: generator.EdgeSelection,
		Strategy:  placement.CornerToCorner,
		TimeLimit: 30 * time.Second,
	}, cfg.Levels[0])
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(logger.EnvLevel, "WARN")
	t.Setenv(config.EnvDBDriver, "postgres")
	t.Setenv(config.EnvDBPath, "elsewhere.db")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.Logging.Level)
	assert.Equal(t, store.DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "elsewhere.db", cfg.Store.SQLitePath)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "logging:\n  colour: true\n",
		"bad algorithm":     "levels:\n  - name: x\n    width: 5\n    height: 5\n    algorithm: wilson\n",
		"too small":         "levels:\n  - name: x\n    width: 3\n    height: 5\n",
		"duplicate level":   "levels:\n  - {name: a, width: 5, height: 5}\n  - {name: A, width: 7, height: 7}\n",
		"empty level table": "levels: []\n",
		"bad driver":        "store:\n  driver: oracle\n",
		"not yaml":          "logging: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, content))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, config.Default()))
	assert.Contains(t, buf.String(), "algorithm: frontier-growth")

	path := writeFile(t, buf.String())
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
