package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"CODE", "NAME", "HEX"})
	table.AddRow([]string{"21", "BLUE1", "#0000ff"})
	table.AddRow([]string{"196", "RED1", "#ff0000"})

	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, rule, 2 rows), got %d:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "CODE") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("rule line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "BLUE1") || !strings.Contains(lines[3], "RED1") {
		t.Errorf("rows out of order:\n%s", got)
	}
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{"short", "x"})
	table.AddRow([]string{"a-much-longer-cell", "y"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")

	// The B column starts at the same offset in every row.
	wantOffset := len("a-much-longer-cell") + 2
	for _, line := range lines[2:] {
		if idx := strings.IndexAny(line, "xy"); idx != wantOffset {
			t.Errorf("line %q: second column at offset %d, want %d", line, idx, wantOffset)
		}
	}
}

func TestTableShortAndLongRows(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"1"})
	table.AddRow([]string{"1", "2", "3", "4"})

	got := table.Render()
	if strings.Contains(got, "4") {
		t.Errorf("cells beyond the header count should be dropped:\n%s", got)
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
}

func TestTableEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("empty table should render to empty string, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{name: "pads short string", s: "ab", width: 4, want: "ab  "},
		{name: "exact width unchanged", s: "abcd", width: 4, want: "abcd"},
		{name: "longer string unchanged", s: "abcdef", width: 4, want: "abcdef"},
		{name: "empty string", s: "", width: 3, want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.s, tt.width); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}
