package live

import (
	"strconv"
	"strings"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// truncate shortens text to limit runes for display.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" || limit <= 3 {
		return normalized
	}
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// formatProgress renders "processed/candidates" for the header.
func formatProgress(state State) string {
	return fmtInt(state.Processed) + "/" + fmtInt(state.Candidates)
}
