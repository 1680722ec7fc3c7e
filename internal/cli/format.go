package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chroma256/chroma256/pkg/xterm256"
	"github.com/spf13/pflag"
)

// enumFlag is a pflag.Value restricted to a fixed set of choices.
type enumFlag struct {
	value   string
	choices []string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(def string, choices ...string) *enumFlag {
	return &enumFlag{value: def, choices: choices}
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Type() string { return "string" }

func (f *enumFlag) Set(v string) error {
	for _, c := range f.choices {
		if v == c {
			f.value = v
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(f.choices, ", "))
}

// colorJSON is the JSON shape for a single colour.
type colorJSON struct {
	Code   int    `json:"code"`
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	R      uint8  `json:"r"`
	G      uint8  `json:"g"`
	B      uint8  `json:"b"`
	Bright bool   `json:"bright"`
}

// colorsJSON is the JSON shape for a colour listing.
type colorsJSON struct {
	Count  int         `json:"count"`
	Colors []colorJSON `json:"colors"`
}

// formatColors renders colours in the requested format. The swatch format
// emits escape sequences only while colour output is enabled; it degrades to
// the hex format otherwise.
func formatColors(colors []*xterm256.Color, format string, useColour bool) (string, error) {
	switch format {
	case "swatch":
		if !useColour {
			return formatColors(colors, "hex", false)
		}
		var buf strings.Builder
		if err := xterm256.FprintColors(&buf, colors); err != nil {
			return "", err
		}
		return buf.String(), nil

	case "hex":
		var buf strings.Builder
		for _, c := range colors {
			fmt.Fprintf(&buf, "%4d %-20s %s\n", c.Code(), c.Name(), c.Hex())
		}
		return buf.String(), nil

	case "json":
		out := colorsJSON{
			Count:  len(colors),
			Colors: make([]colorJSON, len(colors)),
		}
		for i, c := range colors {
			out.Colors[i] = colorJSON{
				Code:   c.Code(),
				Name:   c.Name(),
				Hex:    c.Hex(),
				R:      c.R(),
				G:      c.G(),
				B:      c.B(),
				Bright: c.IsBright(),
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "table":
		headers := []string{"CODE", "NAME", "HEX", "BRIGHTNESS"}
		if useColour {
			headers = append(headers, "SWATCH")
		}
		table := NewTable(headers)
		for _, c := range colors {
			row := []string{
				fmt.Sprintf("%d", c.Code()),
				c.Name(),
				c.Hex(),
				fmt.Sprintf("%.3f", c.PerceivedBrightness()),
			}
			if useColour {
				row = append(row, c.Swatch(6))
			}
			table.AddRow(row)
		}
		return table.Render(), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// paletteFor returns the foreground or background variant of the palette.
func paletteFor(background bool) *xterm256.Palette {
	if background {
		return xterm256.Back
	}
	return xterm256.Fore
}

// selectionFrom resolves a named colour population from the palette.
func selectionFrom(p *xterm256.Palette, from string) ([]*xterm256.Color, error) {
	switch from {
	case "all":
		return p.All(), nil
	case "bright":
		return p.Bright(), nil
	case "dark":
		return p.Dark(), nil
	case "differentiated":
		return p.Differentiated(), nil
	default:
		return nil, fmt.Errorf("unknown colour population: %s", from)
	}
}
