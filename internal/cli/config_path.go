package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"splatstat/internal/config"
	"splatstat/internal/spec"
)

// loadConfig loads an explicit config file, or searches upward from the
// working directory for one. With no file anywhere it falls back to the
// built-in defaults; the bool reports whether a file was loaded.
func loadConfig(configPath string) (spec.Config, bool, error) {
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return spec.Config{}, false, fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := config.Load(abs)
		if err != nil {
			return spec.Config{}, false, err
		}
		anchorConfigPaths(&cfg, abs)
		return cfg, true, nil
	}

	found, err := config.FindConfigPath("")
	if err != nil {
		if errors.Is(err, config.ErrNoConfig) {
			return config.Default(), false, nil
		}
		return spec.Config{}, false, err
	}
	cfg, err := config.Load(found)
	if err != nil {
		return spec.Config{}, false, err
	}
	anchorConfigPaths(&cfg, found)
	return cfg, true, nil
}

// anchorConfigPaths resolves relative config paths against the config
// file's directory, so a config found in a parent behaves the same from
// any working directory.
func anchorConfigPaths(cfg *spec.Config, configPath string) {
	base := config.BaseDirFromConfigPath(configPath)
	cfg.Results.Dir = resolveAgainst(base, cfg.Results.Dir)
	cfg.Output.Dir = resolveAgainst(base, cfg.Output.Dir)
}

func resolveAgainst(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}
