package xterm256

import (
	"strings"
	"testing"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		background bool
		want       string
	}{
		{
			name: "foreground",
			code: 21,
			want: "\x1b[38;5;21m",
		},
		{
			name:       "background",
			code:       21,
			background: true,
			want:       "\x1b[48;5;21m",
		},
		{
			name: "code zero",
			code: 0,
			want: "\x1b[38;5;0m",
		},
		{
			name: "high code",
			code: 255,
			want: "\x1b[38;5;255m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sequence(tt.code, tt.background); got != tt.want {
				t.Errorf("sequence(%d, %v) = %q, want %q", tt.code, tt.background, got, tt.want)
			}
		})
	}
}

func TestColorWrap(t *testing.T) {
	c := newColor(196, 0xff0000, "RED1", false)

	got := c.Wrap("hello")
	want := "\x1b[38;5;196mhello\x1b[0m"
	if got != want {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestColorChannels(t *testing.T) {
	tests := []struct {
		name    string
		rgb     uint32
		r, g, b uint8
	}{
		{name: "black", rgb: 0x000000, r: 0, g: 0, b: 0},
		{name: "white", rgb: 0xffffff, r: 255, g: 255, b: 255},
		{name: "steelblue", rgb: 0x5f87af, r: 0x5f, g: 0x87, b: 0xaf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newColor(0, tt.rgb, "TEST", false)
			if c.R() != tt.r || c.G() != tt.g || c.B() != tt.b {
				t.Errorf("channels = (%d, %d, %d), want (%d, %d, %d)",
					c.R(), c.G(), c.B(), tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := newColor(67, 0x5f87af, "STEELBLUE", false)
	if got := c.Hex(); got != "#5f87af" {
		t.Errorf("Hex() = %q, want %q", got, "#5f87af")
	}
}

func TestPerceivedBrightness(t *testing.T) {
	tests := []struct {
		name   string
		rgb    uint32
		bright bool
	}{
		{name: "black is dark", rgb: 0x000000, bright: false},
		{name: "white is bright", rgb: 0xffffff, bright: true},
		{name: "navy is dark", rgb: 0x000080, bright: false},
		{name: "yellow is bright", rgb: 0xffff00, bright: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newColor(0, tt.rgb, "TEST", false)
			if got := c.IsBright(); got != tt.bright {
				t.Errorf("IsBright() = %v (brightness %f), want %v",
					got, c.PerceivedBrightness(), tt.bright)
			}
			if c.IsDark() == tt.bright {
				t.Errorf("IsDark() should be the complement of IsBright()")
			}
		})
	}
}

func TestIsGreyscale(t *testing.T) {
	tests := []struct {
		name string
		rgb  uint32
		want bool
	}{
		{name: "black", rgb: 0x000000, want: true},
		{name: "white", rgb: 0xffffff, want: true},
		{name: "grey", rgb: 0x808080, want: true},
		{name: "red", rgb: 0xff0000, want: false},
		{name: "steelblue", rgb: 0x5f87af, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newColor(0, tt.rgb, "TEST", false)
			if got := c.IsGreyscale(); got != tt.want {
				t.Errorf("IsGreyscale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwatch(t *testing.T) {
	fg := newColor(21, 0x0000ff, "BLUE1", false)
	bg := newColor(21, 0x0000ff, "BLUE1", true)

	if got := fg.Swatch(3); !strings.Contains(got, "███") {
		t.Errorf("foreground Swatch(3) = %q, want block glyphs", got)
	}
	if got := bg.Swatch(3); !strings.Contains(got, "   ") {
		t.Errorf("background Swatch(3) = %q, want spaces", got)
	}
	if got := fg.SwatchChar(2, "▇"); !strings.Contains(got, "▇▇") {
		t.Errorf("SwatchChar(2, ▇) = %q", got)
	}
}

func TestLabMatchesColorful(t *testing.T) {
	c := newColor(67, 0x5f87af, "STEELBLUE", false)
	l, a, b := c.Lab()
	wl, wa, wb := c.Colorful().Lab()
	if l != wl || a != wa || b != wb {
		t.Errorf("Lab() = (%f, %f, %f), want (%f, %f, %f)", l, a, b, wl, wa, wb)
	}
}
