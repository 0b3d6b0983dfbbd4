package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	Keys      string `json:"keys"`
	Texture   string `json:"texture"`

	// Render settings
	Size        int     `json:"size"`
	Supersample int     `json:"supersample"`
	Frames      int     `json:"frames"`
	FPS         float64 `json:"fps"`
	Mode        string  `json:"mode"`
	Workers     int     `json:"workers"`
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

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Keys      string
	Texture   string
	Size      int
	Frames    int
	FPS       float64
	Mode      string
	Workers   int
}

// Resolve applies CLI overrides, then fills any remaining empty fields
// with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Keys != "" {
		c.Keys = flags.Keys
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 64
	}
	if c.FPS <= 0 {
		c.FPS = 24
	}
	if c.Mode == "" {
		c.Mode = "slerp"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
