// Package config loads the application configuration from YAML
// (~/.config/twopane/config.yaml by default) and merges it over safe
// defaults so a partial file never zeroes out unrelated settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"twopane/internal/errors"
)

// Config represents the application configuration structure.
type Config struct {
	Panes struct {
		Left  string `yaml:"left"`  // Start directory for the left pane
		Right string `yaml:"right"` // Start directory for the right pane
	} `yaml:"panes"`
	Tags struct {
		File string `yaml:"file"` // Tag store document path
	} `yaml:"tags"`
	Display struct {
		ShowHidden   bool     `yaml:"show_hidden"`   // Show dotfiles
		HidePatterns []string `yaml:"hide_patterns"` // Glob patterns to hide
	} `yaml:"display"`
	ConfirmDelete bool `yaml:"confirm_delete"` // Ask before deleting
	Theme         struct {
		Accent   string `yaml:"accent"`   // Highlight color for the active pane
		Disabled string `yaml:"disabled"` // Color for disabled entries
		Tag      string `yaml:"tag"`      // Color for tag chips
		Border   string `yaml:"border"`   // Pane border color
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/twopane/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "twopane", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults so unset fields keep them
	if tempCfg.Panes.Left != "" {
		cfg.Panes.Left = tempCfg.Panes.Left
	}
	if tempCfg.Panes.Right != "" {
		cfg.Panes.Right = tempCfg.Panes.Right
	}
	if tempCfg.Tags.File != "" {
		cfg.Tags.File = tempCfg.Tags.File
	}
	cfg.Display.ShowHidden = tempCfg.Display.ShowHidden
	if len(tempCfg.Display.HidePatterns) > 0 {
		cfg.Display.HidePatterns = tempCfg.Display.HidePatterns
	}
	cfg.ConfirmDelete = tempCfg.ConfirmDelete
	if tempCfg.Theme.Accent != "" {
		cfg.Theme.Accent = tempCfg.Theme.Accent
	}
	if tempCfg.Theme.Disabled != "" {
		cfg.Theme.Disabled = tempCfg.Theme.Disabled
	}
	if tempCfg.Theme.Tag != "" {
		cfg.Theme.Tag = tempCfg.Theme.Tag
	}
	if tempCfg.Theme.Border != "" {
		cfg.Theme.Border = tempCfg.Theme.Border
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	cfg.Panes.Left = home
	cfg.Panes.Right = home
	cfg.Tags.File = filepath.Join(home, ".tags.json")
	cfg.Display.ShowHidden = false
	cfg.Display.HidePatterns = []string{}
	cfg.ConfirmDelete = true

	cfg.Theme.Accent = "#7D56F4"
	cfg.Theme.Disabled = "#6C6C6C"
	cfg.Theme.Tag = "#04B575"
	cfg.Theme.Border = "#444444"

	return cfg
}

// Validate checks the configuration for values that cannot work at runtime.
func (c *Config) Validate() error {
	for _, p := range []struct{ name, value string }{
		{"panes.left", c.Panes.Left},
		{"panes.right", c.Panes.Right},
	} {
		if p.value == "" {
			return errors.NewConfigError("pane directory must not be empty", p.name, errors.InvalidConfig, nil)
		}
	}
	if c.Tags.File == "" {
		return errors.NewConfigError("tag store path must not be empty", "tags.file", errors.InvalidConfig, nil)
	}
	for _, pattern := range c.Display.HidePatterns {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid hide pattern", pattern, errors.InvalidConfig, err)
		}
	}
	return nil
}

// CompiledHidePatterns compiles the configured hide globs. Validate has
// already rejected bad patterns, so compile errors are skipped here.
func (c *Config) CompiledHidePatterns() []glob.Glob {
	out := make([]glob.Glob, 0, len(c.Display.HidePatterns))
	for _, pattern := range c.Display.HidePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
