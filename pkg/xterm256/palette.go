package xterm256

import (
	"sort"
	"strings"
)

// Palette is the full xterm-256 colour table in either its foreground or
// background escape-sequence variant. It is immutable after construction;
// both package-level palettes (Fore and Back) are safe for concurrent use.
type Palette struct {
	colors []*Color // table order
	byName map[string]*Color
	byCode map[int]*Color
	diff   []*Color
}

// Fore is the xterm-256 palette with foreground escape sequences.
var Fore = newPalette(false)

// Back is the xterm-256 palette with background escape sequences.
var Back = newPalette(true)

// newPalette builds a palette from the static colour table.
func newPalette(background bool) *Palette {
	p := &Palette{
		colors: make([]*Color, 0, len(colorTable)),
		byName: make(map[string]*Color, len(colorTable)),
		byCode: make(map[int]*Color, len(colorTable)),
	}

	for _, e := range colorTable {
		c := newColor(e.code, e.rgb, e.name, background)
		p.colors = append(p.colors, c)
		p.byName[e.name] = c
		p.byCode[e.code] = c
	}

	// The curated list may name the same colour more than once; keep the
	// first occurrence only.
	seen := make(map[*Color]bool, len(differentiatedNames))
	for _, name := range differentiatedNames {
		c := p.byName[name]
		if !seen[c] {
			seen[c] = true
			p.diff = append(p.diff, c)
		}
	}

	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int { return len(p.colors) }

// All returns every colour in table (code) order. The returned slice is a
// copy; callers may reorder it freely.
func (p *Palette) All() []*Color {
	out := make([]*Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// ByName looks up a colour by its canonical name, case-insensitively.
func (p *Palette) ByName(name string) (*Color, bool) {
	c, ok := p.byName[strings.ToUpper(name)]
	return c, ok
}

// ByCode looks up a colour by its xterm code.
func (p *Palette) ByCode(code int) (*Color, bool) {
	c, ok := p.byCode[code]
	return c, ok
}

// Bright returns the colours whose perceived brightness is at least 0.5,
// in table order.
func (p *Palette) Bright() []*Color {
	return p.filter((*Color).IsBright)
}

// Dark returns the colours whose perceived brightness is below 0.5, in
// table order.
func (p *Palette) Dark() []*Color {
	return p.filter((*Color).IsDark)
}

// Differentiated returns the curated set of visually distinguishable
// colours, useful for colourizing identifiers.
func (p *Palette) Differentiated() []*Color {
	out := make([]*Color, len(p.diff))
	copy(out, p.diff)
	return out
}

func (p *Palette) filter(keep func(*Color) bool) []*Color {
	var out []*Color
	for _, c := range p.colors {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// SortByCode sorts a slice of colours by xterm code, in place.
func SortByCode(colors []*Color) {
	sort.Slice(colors, func(i, j int) bool {
		return colors[i].code < colors[j].code
	})
}
