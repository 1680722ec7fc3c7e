package cli

import (
	"strings"
)

// Table is a simple column-aligned table formatter.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded with empty cells;
// long rows are truncated to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	sep := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		result.WriteString("\n")
	}

	writeRow(t.headers)

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}
	writeRow(rules)

	for _, row := range t.rows {
		writeRow(row)
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
