// Package config resolves assistant settings from defaults, an optional YAML
// file, a .env file and ASSISTANT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Front end names accepted by the frontend key.
const (
	FrontendAuto = "auto"
	FrontendLine = "line"
	FrontendTUI  = "tui"
)

const (
	envPrefix      = "ASSISTANT"
	localFileName  = "assistant.yaml"
	globalFileName = "config.yaml"
	appDir         = "assistant"
)

// Config holds every setting the assistant reads at startup.
type Config struct {
	AddressBookPath string `yaml:"addressbook_path" mapstructure:"addressbook_path"`
	NoteBookPath    string `yaml:"notebook_path" mapstructure:"notebook_path"`
	Frontend        string `yaml:"frontend" mapstructure:"frontend"`
	LogDir          string `yaml:"log_dir" mapstructure:"log_dir"`
	Prompt          string `yaml:"prompt" mapstructure:"prompt"`

	// File is the config file that was read, empty when none was found.
	File string `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns the settings used when nothing overrides them.
// An empty LogDir means the logger's own default directory.
func DefaultConfig() *Config {
	return &Config{
		AddressBookPath: "addressbook.yaml",
		NoteBookPath:    "notes.yaml",
		Frontend:        FrontendAuto,
		Prompt:          "Enter a command: ",
	}
}

// Load resolves the configuration relative to the working directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom resolves the configuration, looking for .env and assistant.yaml
// in dir. Precedence, lowest first: defaults, config file, environment.
// Variables from .env never override ones already set in the environment.
func LoadFrom(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("addressbook_path", defaults.AddressBookPath)
	v.SetDefault("notebook_path", defaults.NoteBookPath)
	v.SetDefault("frontend", defaults.Frontend)
	v.SetDefault("log_dir", defaults.LogDir)
	v.SetDefault("prompt", defaults.Prompt)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := findConfigFile(dir)
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.File = file
	cfg.Frontend = strings.ToLower(strings.TrimSpace(cfg.Frontend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first existing candidate: assistant.yaml in dir,
// then config.yaml in the user's config directory.
func findConfigFile(dir string) string {
	candidates := []string{filepath.Join(dir, localFileName)}
	if global := globalConfigPath(); global != "" {
		candidates = append(candidates, global)
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func globalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir, globalFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDir, globalFileName)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AddressBookPath) == "" {
		return fmt.Errorf("config: addressbook_path is required")
	}
	if strings.TrimSpace(c.NoteBookPath) == "" {
		return fmt.Errorf("config: notebook_path is required")
	}
	if filepath.Clean(c.AddressBookPath) == filepath.Clean(c.NoteBookPath) {
		return fmt.Errorf("config: addressbook_path and notebook_path must differ")
	}
	switch c.Frontend {
	case FrontendAuto, FrontendLine, FrontendTUI:
	default:
		return fmt.Errorf("config: frontend %q is invalid (must be auto, line, or tui)", c.Frontend)
	}
	return nil
}
