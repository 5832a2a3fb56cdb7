package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"splatstat/internal/stats"
)

// WriteJSON writes the summary artifact as pretty JSON. encoding/json
// sorts map keys, so rerunning over unchanged input reproduces the
// file byte for byte.
func WriteJSON(path string, summary stats.Summary) error {
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
