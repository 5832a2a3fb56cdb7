package config

import (
	"fmt"
	"os"
	"path/filepath"

	"splatstat/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no config file exists.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// BaseDirFromConfigPath derives the directory relative paths are resolved
// against from a config file path.
func BaseDirFromConfigPath(configPath string) string {
	if configPath == "" {
		return "."
	}
	return filepath.Dir(configPath)
}
