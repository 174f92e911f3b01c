package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the application configuration
type Config struct {
	// ScanRoot is the directory searched for images, relative to the
	// working directory unless absolute.
	ScanRoot string `json:"scan_root"`
	// TargetExt is the output format extension without the dot.
	TargetExt string `json:"target_ext"`
	// Quality is the encode quality on a 0-100 scale.
	Quality  int  `json:"quality"`
	Lossless bool `json:"lossless"`
	// DefaultSuffix is the pre-filled suffix for the new-folder strategy.
	DefaultSuffix string `json:"default_suffix"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		ScanRoot:      "public",
		TargetExt:     "webp",
		Quality:       80,
		Lossless:      false,
		DefaultSuffix: "_optimized",
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ScanRoot == "" {
		return fmt.Errorf("scan_root cannot be empty")
	}

	if c.TargetExt == "" {
		return fmt.Errorf("target_ext cannot be empty")
	}

	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100")
	}

	if c.DefaultSuffix == "" {
		return fmt.Errorf("default_suffix cannot be empty")
	}

	return nil
}
