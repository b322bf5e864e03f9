// Package config loads the tool configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/signingkey/internal/domain"
	"github.com/spf13/viper"
)

// AppName names the config directory and the environment prefix
const AppName = "git-interactive-signing-key"

// EnvPrefix is the prefix of environment overrides, e.g. SIGNINGKEY_GPG_PROGRAM
const EnvPrefix = "SIGNINGKEY"

// Config represents the full configuration
type Config struct {
	Scope string    `mapstructure:"scope"`
	Git   GitConfig `mapstructure:"git"`
	GPG   GPGConfig `mapstructure:"gpg"`
	UI    UIConfig  `mapstructure:"ui"`
	Log   LogConfig `mapstructure:"log"`
}

// GitConfig contains git-related settings
type GitConfig struct {
	Program string `mapstructure:"program"`
	Key     string `mapstructure:"key"` // Config value the chosen key is written to
}

// GPGConfig contains gpg-related settings
type GPGConfig struct {
	Program string `mapstructure:"program"` // Empty: use git's gpg.program, then "gpg"
}

// UIConfig contains selector settings
type UIConfig struct {
	Backend string `mapstructure:"backend"` // "inline" or "bubbletea"
	Marker  string `mapstructure:"marker"`
	Cursor  string `mapstructure:"cursor"`
	Color   bool   `mapstructure:"color"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const (
	BackendInline    = "inline"
	BackendBubbletea = "bubbletea"
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scope: "local",
		Git: GitConfig{
			Program: "git",
			Key:     "user.signingkey",
		},
		GPG: GPGConfig{
			Program: "",
		},
		UI: UIConfig{
			Backend: BackendInline,
			Marker:  " ← current",
			Cursor:  "> ",
			Color:   true,
		},
		Log: LogConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// SetDefaults registers the defaults on v so environment overrides
// resolve for every key.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("scope", d.Scope)
	v.SetDefault("git.program", d.Git.Program)
	v.SetDefault("git.key", d.Git.Key)
	v.SetDefault("gpg.program", d.GPG.Program)
	v.SetDefault("ui.backend", d.UI.Backend)
	v.SetDefault("ui.marker", d.UI.Marker)
	v.SetDefault("ui.cursor", d.UI.Cursor)
	v.SetDefault("ui.color", d.UI.Color)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// DefaultPath returns the config file location under the user config
// directory, e.g. ~/.config/git-interactive-signing-key/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppName, "config.yaml"), nil
}

// Load reads configuration with priority:
// 1. Values already set on v (bound CLI flags)
// 2. SIGNINGKEY_* environment variables
// 3. The config file at path, or DefaultPath() when path is empty
// 4. Defaults
//
// A missing file is only an error when path was given explicitly.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
				if explicit {
					return nil, fmt.Errorf("config file %s not found: %w", path, err)
				}
			default:
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	if _, err := domain.ParseScope(c.Scope); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.UI.Backend {
	case BackendInline, BackendBubbletea:
	default:
		return fmt.Errorf("invalid config: unknown ui backend %q (want %s or %s)", c.UI.Backend, BackendInline, BackendBubbletea)
	}
	if c.Git.Key == "" {
		return fmt.Errorf("invalid config: git.key must not be empty")
	}
	return nil
}

// ScopeValue returns the parsed scope; call after Validate
func (c *Config) ScopeValue() domain.Scope {
	s, _ := domain.ParseScope(c.Scope)
	return s
}
