package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/forage/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "forage", "forage.db"), cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "skip", cfg.Import.OnDuplicate)
	assert.Equal(t, "prompt", cfg.Import.Reviewer)
	assert.Equal(t, int64(DefaultMaxBytes), cfg.Import.MaxBytes)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Setenv("FORAGE_TEST_DIR", "/tmp/forage-test")

	v := viper.New()
	v.Set(KeyDatabasePath, "$FORAGE_TEST_DIR/db.sqlite")
	v.Set(KeyOnDuplicate, "rename")
	v.Set(KeyReviewer, "tui")
	v.Set(KeyMaxBytes, 1024)
	v.Set(KeySeedOnStart, true)
	v.Set(KeyLogFormat, "json")

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/forage-test/db.sqlite", cfg.DatabasePath)
	assert.Equal(t, "rename", cfg.Import.OnDuplicate)
	assert.Equal(t, "tui", cfg.Import.Reviewer)
	assert.Equal(t, int64(1024), cfg.Import.MaxBytes)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		value any
		name  string
		key   string
	}{
		{name: "unknown duplicate policy", key: KeyOnDuplicate, value: "merge"},
		{name: "unknown reviewer", key: KeyReviewer, value: "gui"},
		{name: "unknown log level", key: KeyLogLevel, value: "verbose"},
		{name: "unknown log format", key: KeyLogFormat, value: "xml"},
		{name: "zero size limit", key: KeyMaxBytes, value: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := LoadFrom(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FORAGE_EXPAND", "value")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/data/forage.db", want: filepath.Join(home, "data", "forage.db")},
		{input: "/abs/$FORAGE_EXPAND/x", want: "/abs/value/x"},
		{input: "relative/path", want: "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "forage"), Dir())
	assert.Equal(t, filepath.Join(Dir(), "forage.db"), ExpandPath(DefaultDatabasePath))
}
