// Package config provides configuration loading and validation for
// tgclean. Values come from defaults, an optional YAML file, and
// TGCLEAN_-prefixed environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values for optional configuration parameters.
const (
	DefaultLogLevel         = "info"
	DefaultLogJSON          = true
	DefaultCSVPath          = "data/telegram_data.csv"
	DefaultMediaDir         = "data/photos"
	DefaultMaxMessageLength = 1000
)

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// InputConfig locates the export file and its media directory.
type InputConfig struct {
	CSVPath  string `mapstructure:"csv_path"  validate:"required"`
	MediaDir string `mapstructure:"media_dir" validate:"required"`
}

// DatabaseConfig controls the optional SQLite load of cleaned rows.
// An empty path disables it.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CleaningConfig holds the tunable cleaning thresholds.
type CleaningConfig struct {
	MaxMessageLength int `mapstructure:"max_message_length" validate:"required,gt=0"`
}

// Config is the full application configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Input    InputConfig    `mapstructure:"input"`
	Database DatabaseConfig `mapstructure:"database"`
	Cleaning CleaningConfig `mapstructure:"cleaning"`
}

// Load reads configuration from the YAML file at path (missing file is
// not an error; defaults and environment apply), overlays TGCLEAN_*
// environment variables, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TGCLEAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", DefaultLogJSON)

	v.SetDefault("input.csv_path", DefaultCSVPath)
	v.SetDefault("input.media_dir", DefaultMediaDir)

	v.SetDefault("database.path", "")

	v.SetDefault("cleaning.max_message_length", DefaultMaxMessageLength)
}
