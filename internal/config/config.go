// Package config provides configuration loading for dicomview.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/dicomview/internal/raster"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Initial view parameters, restored by a double click
	Viewer struct {
		Slope        float64 `yaml:"slope"`
		Intercept    float64 `yaml:"intercept"`
		WindowWidth  float64 `yaml:"windowWidth"`
		WindowCenter float64 `yaml:"windowCenter"`
		PanX         float64 `yaml:"panX"`
		PanY         float64 `yaml:"panY"`
		Zoom         float64 `yaml:"zoom"`
	} `yaml:"viewer"`

	// Image source
	Image struct {
		// Source is a file path or an http(s) URL
		Source string `yaml:"source"`

		// Width and Height describe headerless .raw files
		Width  int `yaml:"width"`
		Height int `yaml:"height"`

		// ByteOrder of .raw samples: "little" or "big"
		ByteOrder string `yaml:"byteOrder"`

		// AutoWindow replaces the initial window with the 1st-99th percentile range
		AutoWindow bool `yaml:"autoWindow"`
	} `yaml:"image"`

	Window struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"window"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Viewer.Slope = 1.54163614163614
	cfg.Viewer.Intercept = 0
	cfg.Viewer.WindowWidth = 2223
	cfg.Viewer.WindowCenter = 1112
	cfg.Viewer.Zoom = 1.0

	cfg.Image.Source = "case1_16.raw"
	cfg.Image.Width = 512
	cfg.Image.Height = 512
	cfg.Image.ByteOrder = "little"

	cfg.Window.Title = "dicomview"
	cfg.Window.Width = 512
	cfg.Window.Height = 560

	cfg.Log.Level = "info"

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, cfg.Validate()
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks values that would break the viewer at startup.
func (c *Config) Validate() error {
	if c.Viewer.Zoom < 0 {
		return fmt.Errorf("viewer.zoom must not be negative, got %v", c.Viewer.Zoom)
	}
	if _, err := c.RawByteOrder(); err != nil {
		return fmt.Errorf("image.byteOrder: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// RawByteOrder parses Image.ByteOrder.
func (c *Config) RawByteOrder() (binary.ByteOrder, error) {
	return raster.ParseByteOrder(c.Image.ByteOrder)
}

// RawOptions returns the decoding options for headerless images.
func (c *Config) RawOptions() (raster.RawOptions, error) {
	order, err := c.RawByteOrder()
	if err != nil {
		return raster.RawOptions{}, err
	}
	return raster.RawOptions{
		Width:     c.Image.Width,
		Height:    c.Image.Height,
		ByteOrder: order,
	}, nil
}
