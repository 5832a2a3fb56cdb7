package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the scene table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Scene", Width: 24},
		{Title: "Cases", Width: 7},
		{Title: "Missing", Width: 9},
		{Title: "Malformed", Width: 11},
		{Title: "Last dir", Width: 28},
	}
}

// columnsForWidth widens the scene and directory columns on wide
// terminals.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	fixed := 0
	for _, column := range columns[1 : len(columns)-1] {
		fixed += column.Width
	}
	spare := width - fixed - 6
	if spare < columns[0].Width+columns[len(columns)-1].Width {
		return columns
	}
	columns[0].Width = spare / 3
	columns[len(columns)-1].Width = spare - columns[0].Width
	return columns
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, columns []table.Column) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			truncate(row.Name, columns[0].Width),
			fmtInt(row.Cases),
			fmtInt(row.Missing),
			fmtInt(row.Malformed),
			truncate(row.LastDir, columns[len(columns)-1].Width),
		})
	}
	return rows
}
