package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds the paths and processing settings for a shrink run.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Processing settings
	Format    string `json:"format"`    // "webp" or "png"
	Threshold int    `json:"threshold"` // luminance cut, 1-255
	Invert    bool   `json:"invert"`    // light foreground on dark background
	Scale     int    `json:"scale"`     // integer enlargement of the output
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Threshold > 0 {
		c.Threshold = flags.Threshold
	}
	if flags.Invert {
		c.Invert = true
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Output next to the input unless told otherwise
	if c.InputDir != "" {
		if c.OutputDir == "" {
			c.OutputDir = filepath.Join(c.InputDir, "shrunk")
		} else if !filepath.IsAbs(c.OutputDir) && flags.OutputDir == "" {
			c.OutputDir = filepath.Join(c.InputDir, c.OutputDir)
		}
	}

	// Defaults for processing settings
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Threshold <= 0 || c.Threshold > 255 {
		c.Threshold = 128
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Format    string
	Threshold int
	Invert    bool
	Scale     int
	Workers   int
}
