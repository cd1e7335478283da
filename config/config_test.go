package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, FrontendWindow, cfg.Frontend)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 32, cfg.CellSize)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, 3*time.Second, cfg.TimelineWindow)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("BLOCKS_FRONTEND", "terminal")
	t.Setenv("BLOCKS_SEED", "1234")
	t.Setenv("BLOCKS_CELL_SIZE", "20")
	t.Setenv("BLOCKS_LOG_LEVEL", "debug")
	t.Setenv("BLOCKS_TIMELINE_WINDOW", "5s")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 20, cfg.CellSize)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, 5*time.Second, cfg.TimelineWindow)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"BLOCKS_FRONTEND", "browser"},
		{"BLOCKS_SEED", "minus one"},
		{"BLOCKS_CELL_SIZE", "0"},
		{"BLOCKS_LOG_LEVEL", "loud"},
		{"BLOCKS_TIMELINE_WINDOW", "-1s"},
	}
	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file is fine", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("BLOCKS_SEED=77\n"), 0o600))
		// godotenv never overrides variables that are already set, so register cleanup for the one
		// it is about to set
		t.Setenv("BLOCKS_SEED", "")
		require.NoError(t, os.Unsetenv("BLOCKS_SEED"))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, uint64(77), cfg.Seed)
	})
}
