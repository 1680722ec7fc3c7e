package xterm256

import (
	"fmt"
	"io"
)

// FprintColors writes one line per colour: swatch, code and name, each
// rendered in the colour itself. Labels on bright background colours get a
// black foreground overlay so they stay readable.
func FprintColors(w io.Writer, colors []*Color) error {
	for _, c := range colors {
		label := fmt.Sprintf("%4d %s", c.Code(), c.Name())
		if c.IsBackground() && c.IsBright() {
			black, _ := Fore.ByName("BLACK")
			label = black.Wrap(label)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", c.Swatch(3), c.Wrap(label)); err != nil {
			return err
		}
	}
	return nil
}

// FprintAllColors writes swatch, code and name for every colour in the
// palette.
func FprintAllColors(w io.Writer, p *Palette) error {
	return FprintColors(w, p.All())
}

// FprintDifferentiatedColors writes swatch, code and name for the curated
// differentiated colours.
func FprintDifferentiatedColors(w io.Writer, p *Palette) error {
	return FprintColors(w, p.Differentiated())
}

// FprintComparisonGrid writes a grid juxtaposing swatch pairs for every
// combination of the given colours. Rows and columns are labelled with
// colour codes; the diagonal is left empty. When sorted is true, the
// colours are ordered by code first.
func FprintComparisonGrid(w io.Writer, colors []*Color, sorted bool) error {
	if sorted {
		colors = append([]*Color(nil), colors...)
		SortByCode(colors)
	}

	cell := func(s string) string { return fmt.Sprintf("%-4s", s) }
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}

	// Header rows: swatches, then codes.
	write(cell("") + cell(""))
	for _, c := range colors {
		write(c.Swatch(4))
	}
	write("\n")

	write(cell("") + cell(""))
	for _, c := range colors {
		write(cell(fmt.Sprintf("%d", c.Code())))
	}
	write("\n")

	for _, row := range colors {
		write(row.Swatch(4))
		write(cell(fmt.Sprintf("%d", row.Code())))
		for _, col := range colors {
			if row == col {
				write(cell(""))
				continue
			}
			write(" " + row.SwatchChar(1, "▇") + col.SwatchChar(1, "▇") + " ")
		}
		write("\n")
	}

	return err
}
