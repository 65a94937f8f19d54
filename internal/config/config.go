// Package config loads application settings from an optional YAML file and
// CHARBOARD_* environment variables, with environment taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Window  WindowConfig  `mapstructure:"window" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Search  SearchConfig  `mapstructure:"search" validate:"required"`
	History HistoryConfig `mapstructure:"history" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
}

// WindowConfig controls the initial window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width" validate:"required,gte=640,lte=7680"`
	Height int `mapstructure:"height" validate:"required,gte=480,lte=4320"`
}

// StorageConfig locates the on-disk usage store.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// SearchConfig bounds search results shown in the results tab.
type SearchConfig struct {
	MaxResults int `mapstructure:"max_results" validate:"required,gt=0,lte=1000"`
}

// HistoryConfig bounds the recent-symbols strip.
type HistoryConfig struct {
	RecentLimit int `mapstructure:"recent_limit" validate:"required,gt=0,lte=100"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Load reads configuration, applying defaults, then an optional config file,
// then environment overrides, and validates the result.
func Load() (*Config, error) {
	v := viper.New()

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 820)
	v.SetDefault("storage.data_dir", dataDir)
	v.SetDefault("search.max_results", 200)
	v.SetDefault("history.recent_limit", 14)
	v.SetDefault("log.level", "info")

	v.SetConfigName("charboard")
	v.SetConfigType("yaml")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "charboard"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine, a malformed one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("CHARBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func defaultDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "charboard", "data"), nil
}
