package live

import (
	"fmt"
	"sort"

	"splatstat/internal/results"
)

// Reduce applies a scan diagnostic to the UI state.
func Reduce(state State, event results.CaseEvent) State {
	switch event.Type {
	case results.CaseLoaded:
		state = updateRow(state, event.Scene, func(row *SceneRow) {
			row.Cases++
			row.LastDir = event.Dir
		})
		state.Counts.Loaded++
		state.Processed++
	case results.CaseMissing:
		state = updateRow(state, event.Scene, func(row *SceneRow) {
			row.Missing++
			row.LastDir = event.Dir
		})
		state.Counts.Missing++
		state.Processed++
	case results.CaseMalformed:
		state = updateRow(state, event.Scene, func(row *SceneRow) {
			row.Malformed++
			row.LastDir = event.Dir
		})
		state.Counts.Malformed++
		state.Processed++
	case results.CaseSkippedName:
		state.Counts.SkippedName++
		state.Processed++
	case results.CaseValueDropped:
		state.Counts.Dropped++
	case results.CaseReplaced:
		// The follow-up loaded event re-counts this (scene, case).
		state = updateRow(state, event.Scene, func(row *SceneRow) {
			row.Cases--
		})
	}
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// updateRow applies fn to the scene's row, inserting it in name order
// when the scene is new.
func updateRow(state State, scene string, fn func(row *SceneRow)) State {
	if scene == "" {
		return state
	}
	index := sort.Search(len(state.Rows), func(i int) bool {
		return state.Rows[i].Name >= scene
	})
	if index == len(state.Rows) || state.Rows[index].Name != scene {
		rows := make([]SceneRow, 0, len(state.Rows)+1)
		rows = append(rows, state.Rows[:index]...)
		rows = append(rows, SceneRow{Name: scene})
		rows = append(rows, state.Rows[index:]...)
		state.Rows = rows
	}
	fn(&state.Rows[index])
	return state
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event results.CaseEvent) string {
	switch event.Type {
	case results.CaseMissing:
		return fmt.Sprintf("%s missing result file", event.Dir)
	case results.CaseMalformed:
		return fmt.Sprintf("%s malformed: %s", event.Dir, event.Detail)
	case results.CaseSkippedName:
		return fmt.Sprintf("%s skipped (unrecognized name)", event.Dir)
	case results.CaseValueDropped:
		return fmt.Sprintf("%s dropped non-numeric %s", event.Dir, event.Detail)
	case results.CaseReplaced:
		return fmt.Sprintf("%s replaces scene %s case %d", event.Dir, event.Scene, event.CaseID)
	case results.CaseLoaded:
		return fmt.Sprintf("loaded %s", event.Dir)
	}
	return ""
}
