package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvThemeFile = "LISTO_THEME_FILE"
	EnvDataDir   = "LISTO_DATA_DIR"
	EnvDatabase  = "LISTO_DB"
	EnvLogLevel  = "LISTO_LOG_LEVEL"
)

// DefaultStorageTimeout bounds each byte-store call when the config is silent
const DefaultStorageTimeout = 5 * time.Second

// Config represents the application configuration
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Database string `yaml:"database"`
	LogLevel string `yaml:"log_level"`

	// StorageTimeout is nil when unset so that an explicit "0s" can disable it
	StorageTimeout *time.Duration `yaml:"storage_timeout,omitempty"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns a config with every field at its default
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from LISTO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnv applies the LISTO_* environment overrides
func loadEnv(config *Config) {
	if v := os.Getenv(EnvDataDir); v != "" {
		config.DataDir = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		config.Database = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		}
	}

	loadEnv(&config)

	// Fill in any missing values with defaults, then overlay the theme file
	config.applyDefaults()
	loadThemeFile(&config)

	return &config, nil
}

// ApplyFlags overrides config values with command-line flags that were set
func (c *Config) ApplyFlags(flags *pflag.FlagSet) {
	if flags == nil {
		return
	}
	if f := flags.Lookup("db"); f != nil && f.Changed {
		c.Database = f.Value.String()
	}
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		c.LogLevel = f.Value.String()
	}
}

// Timeout returns the per-call storage timeout; zero means none
func (c *Config) Timeout() time.Duration {
	if c.StorageTimeout == nil {
		return DefaultStorageTimeout
	}
	return *c.StorageTimeout
}

// LogDir is where the log file is written
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "listo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "listo", "config.yaml"), nil
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "~/.listo"
	}
	c.DataDir = expandHome(c.DataDir)
	if c.Database == "" {
		c.Database = filepath.Join(c.DataDir, "listo.db")
	}
	c.Database = expandHome(c.Database)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
