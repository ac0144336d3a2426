package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points every config lookup at a fresh temp dir
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("HOME", tempDir)
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogLevel, "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "listo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ToggleTask != "space" {
		t.Errorf("Default ToggleTask key = %s, want space", defaults.ToggleTask)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if want := filepath.Join(home, ".listo"); cfg.DataDir != want {
		t.Errorf("DataDir = %s, want %s", cfg.DataDir, want)
	}
	if want := filepath.Join(home, ".listo", "listo.db"); cfg.Database != want {
		t.Errorf("Database = %s, want %s", cfg.Database, want)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.Timeout() != DefaultStorageTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout(), DefaultStorageTimeout)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `data_dir: /tmp/listo-data
log_level: debug
storage_timeout: 0s
key_mappings:
  quit: "x"
  add_task: "n"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Loaded AddTask key = %s, want n", cfg.KeyMappings.AddTask)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditTask != "e" {
		t.Errorf("Loaded EditTask key = %s, want e (default)", cfg.KeyMappings.EditTask)
	}

	if cfg.Database != "/tmp/listo-data/listo.db" {
		t.Errorf("Database = %s, want derived from data_dir", cfg.Database)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.Timeout() != 0 {
		t.Errorf("Timeout = %v, want 0 (disabled)", cfg.Timeout())
	}
	if cfg.ColorScheme.Accent != MonochromeColorScheme().Accent {
		t.Errorf("Accent = %s, want monochrome preset", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "key_mappings: [unterminated")

	if _, err := Load(); err == nil {
		t.Error("Expected parse error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "log_level: warn\n")
	t.Setenv(EnvDataDir, "/srv/listo")
	t.Setenv(EnvDatabase, "/srv/other.db")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DataDir != "/srv/listo" || cfg.Database != "/srv/other.db" || cfg.LogLevel != "error" {
		t.Errorf("Env overrides not applied: %+v", cfg)
	}
}

func TestApplyFlags(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("log-level", "", "")
	if err := flags.Parse([]string{"--db", "/tmp/flag.db"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cfg.ApplyFlags(flags)

	if cfg.Database != "/tmp/flag.db" {
		t.Errorf("Database = %s, want flag value", cfg.Database)
	}
	// Unset flags leave earlier layers alone
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want env value", cfg.LogLevel)
	}
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  success: "#00FF00"
  title: "#0000FF"
`)
	if err := os.WriteFile(themeFile, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Success != "#00FF00" {
		t.Errorf("Expected success to be #00FF00, got %s", cfg.ColorScheme.Success)
	}
	if cfg.ColorScheme.Title != "#0000FF" {
		t.Errorf("Expected title to be #0000FF, got %s", cfg.ColorScheme.Title)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Error == "" {
		t.Error("Expected error color to have default value")
	}
}

func TestMergeFromPreset(t *testing.T) {
	scheme := DefaultColorScheme()
	scheme.MergeFrom(ColorScheme{Preset: "kanagawa", Accent: "#123456"})

	if scheme.Preset != "kanagawa" {
		t.Errorf("Preset = %s, want kanagawa", scheme.Preset)
	}
	if scheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want override", scheme.Accent)
	}
	if scheme.Title == DefaultColorScheme().Title {
		t.Error("Expected title to come from the kanagawa preset")
	}
}
