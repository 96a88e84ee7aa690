// Package config loads the runtime configuration from defaults, an optional
// YAML file, LEETTRACK_* environment variables and explicit overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sandeepkv93/leettrack/internal/progress"
	"github.com/sandeepkv93/leettrack/internal/storage"
	"github.com/spf13/viper"
)

const envPrefix = "LEETTRACK"

type RuntimeConfig struct {
	CatalogPath string        `mapstructure:"catalog_path"`
	Storage     StorageConfig `mapstructure:"storage"`
	Logging     LoggingConfig `mapstructure:"logging"`
	UI          UIConfig      `mapstructure:"ui"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	// Path is the database file for sqlite and bolt, or the directory for
	// the file backend. Empty means a per-backend default under DataDir.
	Path    string `mapstructure:"path"`
	SlotKey string `mapstructure:"slot_key"`
}

type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type UIConfig struct {
	Density      int    `mapstructure:"density"`
	GlamourStyle string `mapstructure:"glamour_style"`
	ExpandAll    bool   `mapstructure:"expand_all"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Storage: StorageConfig{
			Backend: string(storage.BackendSQLite),
			SlotKey: progress.DefaultSlotKey,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(DataDir(), "leettrack.log"),
			Level: "info",
		},
		UI: UIConfig{
			Density:      1,
			GlamourStyle: "dark",
		},
	}
}

// DataDir is where progress and logs live by default.
func DataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "leettrack")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "leettrack")
	}
}

func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "leettrack")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "leettrack")
	}
}

// Load resolves the configuration. An explicit file must exist; without one,
// config.yaml is looked up in the user config dir and the working directory
// and may be absent. Overrides are dotted keys ("storage.backend") and win
// over every other source.
func Load(file string, overrides map[string]any) (RuntimeConfig, error) {
	v := viper.New()
	setDefaults(v, DefaultRuntimeConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(file) != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return RuntimeConfig{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return RuntimeConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg RuntimeConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg RuntimeConfig) {
	v.SetDefault("catalog_path", cfg.CatalogPath)
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.slot_key", cfg.Storage.SlotKey)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("ui.density", cfg.UI.Density)
	v.SetDefault("ui.glamour_style", cfg.UI.GlamourStyle)
	v.SetDefault("ui.expand_all", cfg.UI.ExpandAll)
}

func (c *RuntimeConfig) normalize() {
	c.CatalogPath = expandHome(strings.TrimSpace(c.CatalogPath))
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Storage.Path = expandHome(strings.TrimSpace(c.Storage.Path))
	c.Storage.SlotKey = strings.TrimSpace(c.Storage.SlotKey)
	c.Logging.File = expandHome(strings.TrimSpace(c.Logging.File))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.UI.GlamourStyle == "" {
		c.UI.GlamourStyle = "dark"
	}
}

func (c RuntimeConfig) Validate() error {
	if !storage.Backend(c.Storage.Backend).IsValid() {
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.SlotKey == "" {
		return errors.New("config: storage.slot_key is required")
	}
	if c.UI.Density < 1 || c.UI.Density > 3 {
		return fmt.Errorf("config: ui.density must be 1-3, got %d", c.UI.Density)
	}
	return nil
}

// StoragePath returns the configured path, or the backend's default location.
func (c RuntimeConfig) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch storage.Backend(c.Storage.Backend) {
	case storage.BackendBolt:
		return filepath.Join(DataDir(), "progress.bolt")
	case storage.BackendFile:
		return filepath.Join(DataDir(), "slots")
	case storage.BackendMemory:
		return ""
	default:
		return filepath.Join(DataDir(), "progress.db")
	}
}

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
