package xterm256

import (
	"strings"
	"testing"
)

func TestFprintColors(t *testing.T) {
	blue, _ := Fore.ByName("BLUE1")

	var buf strings.Builder
	if err := FprintColors(&buf, []*Color{blue}); err != nil {
		t.Fatalf("FprintColors() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "21 BLUE1") {
		t.Errorf("output %q should contain code and name", got)
	}
	if !strings.Contains(got, blue.Sequence()) {
		t.Errorf("output %q should contain the colour escape sequence", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestFprintColorsBrightBackgroundLabel(t *testing.T) {
	white, _ := Back.ByName("WHITE")
	black, _ := Fore.ByName("BLACK")

	var buf strings.Builder
	if err := FprintColors(&buf, []*Color{white}); err != nil {
		t.Fatalf("FprintColors() error = %v", err)
	}

	if !strings.Contains(buf.String(), black.Sequence()) {
		t.Error("bright background labels should carry a black foreground overlay")
	}
}

func TestFprintAllColors(t *testing.T) {
	var buf strings.Builder
	if err := FprintAllColors(&buf, Fore); err != nil {
		t.Fatalf("FprintAllColors() error = %v", err)
	}

	lines := strings.Count(buf.String(), "\n")
	if lines != 256 {
		t.Errorf("expected 256 lines, got %d", lines)
	}
}

func TestFprintComparisonGrid(t *testing.T) {
	c1, _ := Fore.ByCode(196)
	c2, _ := Fore.ByCode(21)
	c3, _ := Fore.ByCode(46)

	var buf strings.Builder
	if err := FprintComparisonGrid(&buf, []*Color{c1, c2, c3}, true); err != nil {
		t.Fatalf("FprintComparisonGrid() error = %v", err)
	}

	got := buf.String()

	// Two header rows plus one row per colour.
	if lines := strings.Count(got, "\n"); lines != 5 {
		t.Errorf("expected 5 lines, got %d", lines)
	}

	// Sorted by code, 21 should label the first body row.
	idx21 := strings.Index(got, "21")
	idx196 := strings.Index(got, "196")
	if idx21 < 0 || idx196 < 0 || idx21 > idx196 {
		t.Errorf("expected code 21 before 196 in sorted grid:\n%s", got)
	}
}
