package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig specifies everything one wfcgen invocation needs: which tile
// universe to solve against, the grid dimensions, and an optional seed.
// Exactly one of RuleSetPath or SocketPath must be set; RuleSetPath points
// at the canonical ruleset.Parse JSON format, SocketPath at the
// socket.ParseBaseTiles derivation format.
type RunConfig struct {
	// RuleSetPath names a canonical RuleSet JSON document.
	RuleSetPath string `yaml:"ruleSetPath,omitempty" json:"ruleSetPath,omitempty"`

	// SocketPath names a socket-derivation input document; mutually
	// exclusive with RuleSetPath.
	SocketPath string `yaml:"socketPath,omitempty" json:"socketPath,omitempty"`

	// Width and Height are the grid dimensions in cells.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// Seed is the master seed. A nil Seed draws one from crypto/rand.
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// TileWidth and TileHeight are pixel dimensions recorded in TMJ
	// output only; ignored for JSON export.
	TileWidth  int `yaml:"tileWidth,omitempty" json:"tileWidth,omitempty"`
	TileHeight int `yaml:"tileHeight,omitempty" json:"tileHeight,omitempty"`
}

// LoadConfig reads and validates a YAML run configuration file.
func LoadConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.TileWidth == 0 {
		cfg.TileWidth = 16
	}
	if cfg.TileHeight == 0 {
		cfg.TileHeight = 16
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the config names exactly one tile-universe source
// and has positive grid dimensions.
func (c *RunConfig) Validate() error {
	if c.RuleSetPath == "" && c.SocketPath == "" {
		return fmt.Errorf("config: one of ruleSetPath or socketPath is required")
	}
	if c.RuleSetPath != "" && c.SocketPath != "" {
		return fmt.Errorf("config: ruleSetPath and socketPath are mutually exclusive")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}
