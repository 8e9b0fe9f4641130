package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile      = "file"
	BackendSQLCipher = "sqlcipher"
)

type Config struct {
	// Where the address book lives
	Data DataConfig `yaml:"data"`

	Log LogConfig `yaml:"log"`

	// Interactive shell settings
	Shell ShellConfig `yaml:"shell"`
}

type DataConfig struct {
	Path       string `yaml:"path"`        // JSON/YAML file, or database file for sqlcipher
	Backend    string `yaml:"backend"`     // "file" or "sqlcipher"
	SeedSample bool   `yaml:"seed_sample"` // start new books with sample data
}

type LogConfig struct {
	Level string `yaml:"level"`
	Mode  string `yaml:"mode"` // "dev" or "prod"
	File  string `yaml:"file"` // empty logs to stderr
}

type ShellConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// overrides holds the environment variables that take precedence over the file.
type overrides struct {
	ConfigPath string `env:"RECONNECT_CONFIG"`
	DataPath   string `env:"RECONNECT_DATA_PATH"`
	Backend    string `env:"RECONNECT_BACKEND"`
	LogLevel   string `env:"RECONNECT_LOG_LEVEL"`
	LogFile    string `env:"RECONNECT_LOG_FILE"`
}

func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "reconnect")
}

// DefaultConfigPath returns $RECONNECT_CONFIG, or ~/.config/reconnect/config.yaml
func DefaultConfigPath() string {
	var o overrides
	if err := env.Parse(&o); err == nil && o.ConfigPath != "" {
		return o.ConfigPath
	}
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := configDir()
	return &Config{
		Data: DataConfig{
			Path:       filepath.Join(dir, "addressbook.json"),
			Backend:    BackendFile,
			SeedSample: true,
		},
		Log: LogConfig{
			Level: "warn",
			Mode:  "dev",
		},
		Shell: ShellConfig{
			Prompt:      "reconnect> ",
			HistoryFile: filepath.Join(dir, "history"),
		},
	}
}

// Load loads config from the given path, or defaults if the file doesn't
// exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Data.Path = expandHome(cfg.Data.Path)
	cfg.Shell.HistoryFile = expandHome(cfg.Shell.HistoryFile)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

func (c *Config) applyEnv() error {
	var o overrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.DataPath != "" {
		c.Data.Path = o.DataPath
	}
	if o.Backend != "" {
		c.Data.Backend = o.Backend
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	return nil
}

// Validate rejects values the application cannot act on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return errors.New("data.path must not be empty")
	}
	switch c.Data.Backend {
	case BackendFile, BackendSQLCipher:
	default:
		return fmt.Errorf("unknown data.backend %q (want %s or %s)", c.Data.Backend, BackendFile, BackendSQLCipher)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	return nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the directories the data and history files live in.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(filepath.Dir(c.Data.Path), 0700); err != nil {
		return err
	}
	if c.Shell.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(c.Shell.HistoryFile), 0700); err != nil {
			return err
		}
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
