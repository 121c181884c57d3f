package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priests-devils/river"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, river.DefaultTotals(), cfg.Totals())
	assert.Equal(t, 500*time.Millisecond, cfg.ReplayInterval)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("priests: 4\ndevils: 2\nreplay_interval: 250ms\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, river.Totals{Priests: 4, Devils: 2}, cfg.Totals())
	assert.Equal(t, 250*time.Millisecond, cfg.ReplayInterval)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("devils: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Priests)
	assert.Equal(t, 1, cfg.Devils)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative priests": "priests: -1\n",
		"too many devils":  "devils: 51\n",
		"unknown level":    "log_level: loud\n",
		"bad yaml":         "priests: [\n",
		"bad interval":     "replay_interval: soon\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dir := t.TempDir()
	cfg, err = Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "puzzle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("priests: 2\ndevils: 2\nlog_level: warn\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, river.Totals{Priests: 2, Devils: 2}, cfg.Totals())
	assert.Equal(t, slog.LevelWarn, cfg.Level())

	require.NoError(t, os.WriteFile(path, []byte("log_level: nope\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "puzzle.yaml")
}
