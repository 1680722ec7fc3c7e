// Package xterm256 provides the xterm-256 terminal colour palette: named
// colours with their codes and RGB values, derived colour properties, and
// selection of visually differentiated colour subsets.
package xterm256

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// ANSI escape sequence fragments for 256-colour SGR codes.
const (
	csi   = "\x1b["
	fgCmd = "38"
	bgCmd = "48"

	// Reset clears all styles and colours.
	Reset = csi + "0m"
)

// sequence builds the SGR escape sequence selecting the given colour code.
func sequence(code int, background bool) string {
	cmd := fgCmd
	if background {
		cmd = bgCmd
	}
	return fmt.Sprintf("%s%s;5;%dm", csi, cmd, code)
}

// Color is a single xterm-256 palette entry. It is immutable after
// construction; derived properties are computed lazily, at most once per
// instance, and are safe for concurrent use. Palette colours are shared
// pointers, so they may be used directly as map keys with identity semantics.
type Color struct {
	code       int
	name       string
	rgb        uint32 // packed 0xRRGGBB
	background bool
	seq        string

	hsvOnce    sync.Once
	hue        float64
	saturation float64
	value      float64

	brightOnce sync.Once
	brightness float64
}

// newColor constructs a palette entry with its escape sequence precomputed.
func newColor(code int, rgb uint32, name string, background bool) *Color {
	return &Color{
		code:       code,
		name:       name,
		rgb:        rgb,
		background: background,
		seq:        sequence(code, background),
	}
}

// Code returns the xterm colour code (0-255).
func (c *Color) Code() int { return c.code }

// Name returns the canonical colour name (e.g. "DEEPSKYBLUE4_1").
func (c *Color) Name() string { return c.name }

// RGB returns the packed 24-bit RGB value (0xRRGGBB).
func (c *Color) RGB() uint32 { return c.rgb }

// IsBackground reports whether this entry emits a background escape sequence.
func (c *Color) IsBackground() bool { return c.background }

// Sequence returns the SGR escape sequence that selects this colour.
func (c *Color) Sequence() string { return c.seq }

// String returns the escape sequence, so a Color can be interpolated
// directly into terminal output.
func (c *Color) String() string { return c.seq }

// Wrap returns s prefixed with this colour's escape sequence and suffixed
// with a reset of all styles.
func (c *Color) Wrap(s string) string {
	return c.seq + s + Reset
}

// Hex returns the colour's RGB value as a hex string (e.g. "#5f87af").
func (c *Color) Hex() string {
	return fmt.Sprintf("#%06x", c.rgb)
}

// R returns the red channel (0-255).
func (c *Color) R() uint8 { return uint8(c.rgb >> 16) }

// G returns the green channel (0-255).
func (c *Color) G() uint8 { return uint8(c.rgb >> 8) }

// B returns the blue channel (0-255).
func (c *Color) B() uint8 { return uint8(c.rgb) }

// Red returns the red channel scaled to [0, 1].
func (c *Color) Red() float64 { return float64(c.R()) / 255.0 }

// Green returns the green channel scaled to [0, 1].
func (c *Color) Green() float64 { return float64(c.G()) / 255.0 }

// Blue returns the blue channel scaled to [0, 1].
func (c *Color) Blue() float64 { return float64(c.B()) / 255.0 }

// Colorful returns the colour as a go-colorful colour for colour-space
// conversions.
func (c *Color) Colorful() colorful.Color {
	return colorful.Color{R: c.Red(), G: c.Green(), B: c.Blue()}
}

// Lab returns the colour in CIE-L*a*b* space (D65 reference white).
func (c *Color) Lab() (l, a, b float64) {
	return c.Colorful().Lab()
}

// HSV returns the colour's hue (degrees, 0-360), saturation and value, each
// of the latter in [0, 1]. Computed once and cached.
func (c *Color) HSV() (h, s, v float64) {
	c.hsvOnce.Do(func() {
		c.hue, c.saturation, c.value = c.Colorful().Hsv()
	})
	return c.hue, c.saturation, c.value
}

// IsGreyscale reports whether the colour has zero saturation.
func (c *Color) IsGreyscale() bool {
	_, s, _ := c.HSV()
	return s == 0.0
}

// PerceivedBrightness returns the colour's perceived brightness in [0, 1]
// according to the HSP colour model.
//
// See https://alienryderflex.com/hsp.html
func (c *Color) PerceivedBrightness() float64 {
	c.brightOnce.Do(func() {
		r, g, b := c.Red(), c.Green(), c.Blue()
		c.brightness = math.Sqrt(0.299*r*r + 0.587*g*g + 0.114*b*b)
	})
	return c.brightness
}

// IsBright reports whether the perceived brightness is at least 0.5.
func (c *Color) IsBright() bool {
	return c.PerceivedBrightness() >= 0.5
}

// IsDark reports whether the perceived brightness is below 0.5.
func (c *Color) IsDark() bool {
	return c.PerceivedBrightness() < 0.5
}

// Swatch returns a colour swatch n cells wide: a run of block glyphs for
// foreground colours, or colourized spaces for background colours.
func (c *Color) Swatch(n int) string {
	char := "█"
	if c.background {
		char = " "
	}
	return c.SwatchChar(n, char)
}

// SwatchChar returns a swatch built from n repetitions of char.
func (c *Color) SwatchChar(n int, char string) string {
	return c.Wrap(strings.Repeat(char, n))
}
