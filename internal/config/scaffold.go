package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1

results:
  dir: "./results"
  file_name: "results.json"
  case_delimiter: "_case"

output:
  formats: [json, csv]

report:
  metric_order: [PSNR, SSIM, LPIPS]
  note: "Vanilla Gaussian Splatting - RGB metrics only (PSNR, SSIM, LPIPS)"
`

// Scaffold writes a starter config file, refusing to overwrite one.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
