package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the viewer settings
type Config struct {
	MaxStackSize int  `json:"maxStackSize"`
	Colored      bool `json:"colored"`
}

// LoadConfig reads the viewer configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig writes a configuration to a JSON file
func SaveConfig(filename string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig creates a template configuration file
func CreateDefaultConfig(filename string) error {
	defaultConfig := &Config{
		MaxStackSize: 500,
		Colored:      true,
	}

	return SaveConfig(filename, defaultConfig)
}
