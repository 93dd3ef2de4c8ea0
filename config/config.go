package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/miosa/osa-vlist/virtual"
)

// Config holds persistent viewer settings stored at <profileDir>/vlist.json.
type Config struct {
	Theme          string  `json:"theme,omitempty"`
	Keeps          int     `json:"keeps,omitempty"`
	Buffer         int     `json:"buffer"`
	EstimatedSize  float64 `json:"estimated_size,omitempty"`
	UpperThreshold int     `json:"upper_threshold,omitempty"`
	LowerThreshold int     `json:"lower_threshold,omitempty"`
	Scrollbar      bool    `json:"scrollbar"`
}

const filename = "vlist.json"

// ThemeEnv overrides the configured theme when set.
const ThemeEnv = "OSA_VLIST_THEME"

// Path returns the settings file location inside profileDir.
func Path(profileDir string) string {
	return filepath.Join(profileDir, filename)
}

// Load reads <profileDir>/vlist.json and returns the parsed Config.
// If the file is absent or unreadable, a default Config is returned.
// Fields missing from the file keep their defaults.
func Load(profileDir string) Config {
	cfg := Defaults()
	data, err := os.ReadFile(Path(profileDir))
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			cfg = Defaults()
		}
	}
	if t := os.Getenv(ThemeEnv); t != "" {
		cfg.Theme = t
	}
	return cfg.normalize()
}

// Save writes cfg to <profileDir>/vlist.json, creating the directory if needed.
func Save(profileDir string, cfg Config) error {
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(Path(profileDir), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Update applies patch to the settings stored in profileDir and saves them.
// Only the file is read: environment overrides and command-line flags stay
// out of the saved copy. A file that does not parse is left untouched.
func Update(profileDir string, patch func(*Config)) error {
	cfg := Defaults()
	data, err := os.ReadFile(Path(profileDir))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read config: %w", err)
	}
	patch(&cfg)
	return Save(profileDir, cfg.normalize())
}

// Defaults returns the built-in settings. An empty theme means the terminal
// background decides.
func Defaults() Config {
	return Config{
		Keeps:         virtual.DefaultKeeps,
		Buffer:        virtual.RecommendedBuffer(virtual.DefaultKeeps),
		EstimatedSize: virtual.DefaultEstimatedSize,
		Scrollbar:     true,
	}
}

func (c Config) normalize() Config {
	if c.Keeps < 1 {
		c.Keeps = virtual.DefaultKeeps
	}
	if c.Buffer < 0 {
		c.Buffer = virtual.RecommendedBuffer(c.Keeps)
	}
	if c.EstimatedSize <= 0 {
		c.EstimatedSize = virtual.DefaultEstimatedSize
	}
	c.UpperThreshold = max(0, c.UpperThreshold)
	c.LowerThreshold = max(0, c.LowerThreshold)
	return c
}
