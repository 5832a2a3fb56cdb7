package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoConfig reports that no config file exists in the search path.
// Commands that treat the config as optional fall back to defaults.
var ErrNoConfig = errors.New("no config file found")

// Config path and default-value constants used by the CLI and loaders.
// An empty output dir means "write artifacts next to the results".
const (
	ConfigFileName       = ".splatstat.yml"
	DefaultResultsDir    = "./results"
	DefaultResultsFile   = "results.json"
	DefaultCaseDelimiter = "_case"
	DefaultNote          = "Vanilla Gaussian Splatting - RGB metrics only (PSNR, SSIM, LPIPS)"
)

// DefaultFormats returns the artifact formats written when none are configured.
func DefaultFormats() []string {
	return []string{"json", "csv"}
}

// DefaultMetricOrder returns the preferred metric ordering for reports.
func DefaultMetricOrder() []string {
	return []string{"PSNR", "SSIM", "LPIPS"}
}

// ConfigPath returns the config file path under a directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// FindConfigPath searches upward from a directory for a config file.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or parent directories", ErrNoConfig, ConfigFileName, abs)
		}
		dir = parent
	}
}
