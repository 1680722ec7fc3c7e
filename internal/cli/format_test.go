package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/chroma256/chroma256/pkg/xterm256"
)

func testColors(t *testing.T, codes ...int) []*xterm256.Color {
	t.Helper()
	colors := make([]*xterm256.Color, len(codes))
	for i, code := range codes {
		c, ok := xterm256.Fore.ByCode(code)
		if !ok {
			t.Fatalf("no colour with code %d", code)
		}
		colors[i] = c
	}
	return colors
}

func TestFormatColorsHex(t *testing.T) {
	out, err := formatColors(testColors(t, 21, 196), "hex", false)
	if err != nil {
		t.Fatalf("formatColors() error = %v", err)
	}

	if !strings.Contains(out, "BLUE1") || !strings.Contains(out, "#0000ff") {
		t.Errorf("hex output missing BLUE1 entry:\n%s", out)
	}
	if !strings.Contains(out, "RED1") || !strings.Contains(out, "#ff0000") {
		t.Errorf("hex output missing RED1 entry:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("hex output should not contain escape sequences")
	}
}

func TestFormatColorsSwatchDegradesWithoutColour(t *testing.T) {
	colors := testColors(t, 21)

	plain, err := formatColors(colors, "swatch", false)
	if err != nil {
		t.Fatalf("formatColors() error = %v", err)
	}
	if strings.Contains(plain, "\x1b[") {
		t.Error("swatch format with colour disabled should not emit escapes")
	}

	coloured, err := formatColors(colors, "swatch", true)
	if err != nil {
		t.Fatalf("formatColors() error = %v", err)
	}
	if !strings.Contains(coloured, "\x1b[38;5;21m") {
		t.Error("swatch format with colour enabled should emit escapes")
	}
}

func TestFormatColorsJSON(t *testing.T) {
	out, err := formatColors(testColors(t, 21, 196), "json", false)
	if err != nil {
		t.Fatalf("formatColors() error = %v", err)
	}

	var parsed colorsJSON
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Count != 2 || len(parsed.Colors) != 2 {
		t.Errorf("count = %d, colors = %d, want 2", parsed.Count, len(parsed.Colors))
	}
	if parsed.Colors[0].Name != "BLUE1" || parsed.Colors[0].Hex != "#0000ff" {
		t.Errorf("first colour = %+v", parsed.Colors[0])
	}
	if parsed.Colors[1].R != 255 || parsed.Colors[1].G != 0 || parsed.Colors[1].B != 0 {
		t.Errorf("RED1 channels = %+v", parsed.Colors[1])
	}
}

func TestFormatColorsTable(t *testing.T) {
	out, err := formatColors(testColors(t, 21), "table", false)
	if err != nil {
		t.Fatalf("formatColors() error = %v", err)
	}

	if !strings.Contains(out, "CODE") || !strings.Contains(out, "BRIGHTNESS") {
		t.Errorf("table output missing headers:\n%s", out)
	}
	if strings.Contains(out, "SWATCH") {
		t.Error("table should omit the swatch column when colour is disabled")
	}
}

func TestFormatColorsUnknownFormat(t *testing.T) {
	if _, err := formatColors(nil, "yaml", false); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSelectionFrom(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		want    int
		wantErr bool
	}{
		{name: "all", from: "all", want: 256},
		{name: "differentiated", from: "differentiated", want: 39},
		{name: "unknown", from: "pastel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := selectionFrom(xterm256.Fore, tt.from)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectionFrom(%q) error = %v, wantErr %v", tt.from, err, tt.wantErr)
			}
			if !tt.wantErr && len(colors) != tt.want {
				t.Errorf("len = %d, want %d", len(colors), tt.want)
			}
		})
	}
}

func TestSelectionFromBrightDarkPartition(t *testing.T) {
	bright, err := selectionFrom(xterm256.Fore, "bright")
	if err != nil {
		t.Fatal(err)
	}
	dark, err := selectionFrom(xterm256.Fore, "dark")
	if err != nil {
		t.Fatal(err)
	}
	if len(bright)+len(dark) != 256 {
		t.Errorf("bright (%d) + dark (%d) != 256", len(bright), len(dark))
	}
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		wantCode int
		wantErr  bool
	}{
		{name: "by code", arg: "21", wantCode: 21},
		{name: "by name", arg: "RED1", wantCode: 196},
		{name: "by lowercase name", arg: "gold1", wantCode: 220},
		{name: "out of range code", arg: "300", wantErr: true},
		{name: "unknown name", arg: "NOTACOLOUR", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := resolveColor(xterm256.Fore, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveColor(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !tt.wantErr && c.Code() != tt.wantCode {
				t.Errorf("resolveColor(%q).Code() = %d, want %d", tt.arg, c.Code(), tt.wantCode)
			}
		})
	}
}

func TestEnumFlag(t *testing.T) {
	f := newEnumFlag("hex", "hex", "json")

	if f.String() != "hex" {
		t.Errorf("default = %q, want hex", f.String())
	}
	if err := f.Set("json"); err != nil {
		t.Errorf("Set(json) error = %v", err)
	}
	if f.String() != "json" {
		t.Errorf("value after Set = %q, want json", f.String())
	}
	if err := f.Set("yaml"); err == nil {
		t.Error("Set(yaml) should fail")
	}
	if f.String() != "json" {
		t.Error("failed Set should not change the value")
	}
}
