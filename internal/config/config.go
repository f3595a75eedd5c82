package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/JohnDeved/docfmt/internal/util"
)

func homeDirOrFallback() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// Config holds all user-configurable settings.
type Config struct {
	// Ellipsis joins the kept ends of a truncated name.
	Ellipsis string `json:"ellipsis"`
	// FrontChars is how many leading characters survive truncation.
	FrontChars int `json:"front_chars"`
	// BackChars is how many trailing characters survive truncation.
	BackChars int `json:"back_chars"`
	// ListLimit caps the number of listed entries (0 = unlimited).
	ListLimit int `json:"list_limit"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Ellipsis:   util.DefaultEllipsis,
		FrontChars: 20,
		BackChars:  10,
		ListLimit:  0,
	}
}

// ConfigDir returns the directory where the config file is stored.
func ConfigDir() string {
	if dir := os.Getenv("DOCFMT_CONFIG_DIR"); dir != "" {
		return dir
	}
	home := homeDirOrFallback()
	return filepath.Join(home, ".config", "docfmt")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load reads config from disk, returning defaults if the file doesn't exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(), data, 0o644)
}
