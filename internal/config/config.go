package config

import (
	"fmt"
	"slices"

	"github.com/Veraticus/forage/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath = "database.path"
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyOnDuplicate  = "import.on_duplicate"
	KeyReviewer     = "import.reviewer"
	KeyMaxBytes     = "import.max_bytes"
	KeySeedOnStart  = "seed.on_start"
)

// Defaults.
const (
	DefaultDatabasePath = "~/.config/forage/forage.db"
	DefaultOnDuplicate  = "skip"
	DefaultReviewer     = "prompt"
	DefaultMaxBytes     = 10 << 20
)

// OnDuplicateAsk hands conflicts to an interactive reviewer.
const OnDuplicateAsk = "ask"

var (
	onDuplicateChoices = []string{"skip", "replace", "rename", OnDuplicateAsk}
	reviewerChoices    = []string{"prompt", "tui"}
	logFormatChoices   = []string{"console", "json"}
)

// Config is the resolved application configuration.
type Config struct {
	DatabasePath string
	LogLevel     string
	LogFormat    string
	Import       ImportConfig
	SeedOnStart  bool
}

// ImportConfig controls how CSV documents are imported.
type ImportConfig struct {
	OnDuplicate string
	Reviewer    string
	MaxBytes    int64
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyOnDuplicate, DefaultOnDuplicate)
	v.SetDefault(KeyReviewer, DefaultReviewer)
	v.SetDefault(KeyMaxBytes, DefaultMaxBytes)
	v.SetDefault(KeySeedOnStart, false)
}

// Load reads configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v, expanding paths and validating values.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		Import: ImportConfig{
			OnDuplicate: v.GetString(KeyOnDuplicate),
			Reviewer:    v.GetString(KeyReviewer),
			MaxBytes:    v.GetInt64(KeyMaxBytes),
		},
		SeedOnStart: v.GetBool(KeySeedOnStart),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every value is one the application understands.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: %s must be set", common.ErrInvalidConfig, KeyDatabasePath)
	}
	if _, err := common.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if !slices.Contains(logFormatChoices, c.LogFormat) {
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.LogFormat)
	}
	if !slices.Contains(onDuplicateChoices, c.Import.OnDuplicate) {
		return fmt.Errorf("%w: %s must be one of %v, got %q",
			common.ErrInvalidConfig, KeyOnDuplicate, onDuplicateChoices, c.Import.OnDuplicate)
	}
	if !slices.Contains(reviewerChoices, c.Import.Reviewer) {
		return fmt.Errorf("%w: %s must be one of %v, got %q",
			common.ErrInvalidConfig, KeyReviewer, reviewerChoices, c.Import.Reviewer)
	}
	if c.Import.MaxBytes <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyMaxBytes)
	}
	return nil
}
