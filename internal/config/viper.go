// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		File       string `mapstructure:"file" yaml:"file"`
		SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	} `mapstructure:"data" yaml:"data"`

	Users struct {
		DefaultName string `mapstructure:"default_name" yaml:"default_name"`
	} `mapstructure:"users" yaml:"users"`

	History struct {
		RecentLimit int `mapstructure:"recent_limit" yaml:"recent_limit"`
	} `mapstructure:"history" yaml:"history"`

	Clock struct {
		Timezone string `mapstructure:"timezone" yaml:"timezone"`
	} `mapstructure:"clock" yaml:"clock"`

	Keywords struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"keywords" yaml:"keywords"`

	Server struct {
		Port int    `mapstructure:"port" yaml:"port"`
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"server" yaml:"server"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.financas")
	v.AddConfigPath(".financas")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("FINANCAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. Hosting platforms hand the port over as plain PORT
	if err := v.BindEnv("server.port", "FINANCAS_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.backend", BackendFile)
	v.SetDefault("data.file", "financas_dados.json")
	v.SetDefault("data.sqlite_path", "financas.db")

	v.SetDefault("users.default_name", "Principal")
	v.SetDefault("history.recent_limit", 10)
	v.SetDefault("clock.timezone", "America/Sao_Paulo")
	v.SetDefault("keywords.file", "")

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.path", "/whatsapp")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Data.Backend {
	case BackendFile:
		if strings.TrimSpace(config.Data.File) == "" {
			return fmt.Errorf("data.file is required for the file backend")
		}
	case BackendSQLite:
		if strings.TrimSpace(config.Data.SQLitePath) == "" {
			return fmt.Errorf("data.sqlite_path is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid data.backend: %s (must be 'file', 'sqlite' or 'memory')", config.Data.Backend)
	}

	if strings.TrimSpace(config.Users.DefaultName) == "" {
		return fmt.Errorf("users.default_name must not be empty")
	}

	if config.History.RecentLimit < 1 {
		return fmt.Errorf("history.recent_limit must be positive, got: %d", config.History.RecentLimit)
	}

	if _, err := time.LoadLocation(config.Clock.Timezone); err != nil {
		return fmt.Errorf("invalid clock.timezone %q: %w", config.Clock.Timezone, err)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", config.Server.Port)
	}

	if !strings.HasPrefix(config.Server.Path, "/") {
		return fmt.Errorf("server.path must start with '/', got: %s", config.Server.Path)
	}

	return nil
}

// Location returns the configured time zone. The value was checked by
// validation; an unloadable zone falls back to local time.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Clock.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
