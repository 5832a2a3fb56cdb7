package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the scan header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "Scanning " + state.Root
	if state.Candidates > 0 {
		line += " | Cases: " + formatProgress(state)
	}
	if !state.StartedAt.IsZero() {
		line += " | Elapsed: " + now.Sub(state.StartedAt).Round(100*time.Millisecond).String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the scan counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Loaded: " + fmtInt(counts.Loaded) +
		" Missing: " + fmtInt(counts.Missing) +
		" Malformed: " + fmtInt(counts.Malformed) +
		" Skipped: " + fmtInt(counts.SkippedName) +
		" Dropped: " + fmtInt(counts.Dropped)
	if state.Finished {
		line += " | Scenes: " + fmtInt(state.Scenes) + " Cases: " + fmtInt(state.Cases)
	}
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
