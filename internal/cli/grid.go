package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chroma256/chroma256/pkg/xterm256"
	"github.com/spf13/cobra"
)

var (
	// Grid command flags
	gridBackground bool
	gridNoSort     bool
	gridOutput     string
)

// gridCmd represents the grid command
var gridCmd = &cobra.Command{
	Use:   "grid [code|name...]",
	Short: "Render a pairwise colour comparison grid",
	Long: `Render a grid juxtaposing swatch pairs for every combination of the
given colours, to judge how well they distinguish side by side.

Colours are given as xterm codes or names. Without arguments the curated
differentiated colours are compared.

Examples:
  # Compare the curated differentiated colours
  chroma256 grid

  # Compare specific colours by code and name
  chroma256 grid 21 196 46 GOLD1

  # Keep the argument order instead of sorting by code
  chroma256 grid --no-sort 196 21 46`,
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().BoolVar(&gridBackground, "background", false, "use background escape sequences")
	gridCmd.Flags().BoolVar(&gridNoSort, "no-sort", false, "keep argument order instead of sorting by code")
	gridCmd.Flags().StringVarP(&gridOutput, "output", "o", "", "output file (default: stdout)")
}

// runGrid executes the grid command.
func runGrid(cmd *cobra.Command, args []string) error {
	palette := paletteFor(gridBackground)

	var colors []*xterm256.Color
	if len(args) == 0 {
		colors = palette.Differentiated()
	} else {
		seen := make(map[*xterm256.Color]bool, len(args))
		for _, arg := range args {
			c, err := resolveColor(palette, arg)
			if err != nil {
				return err
			}
			if seen[c] {
				continue
			}
			seen[c] = true
			colors = append(colors, c)
		}
	}

	if len(colors) < 2 {
		return fmt.Errorf("need at least 2 distinct colours to compare, got %d", len(colors))
	}

	logger.Debug("rendering comparison grid", "colours", len(colors), "sorted", !gridNoSort)

	var buf strings.Builder
	if err := xterm256.FprintComparisonGrid(&buf, colors, !gridNoSort); err != nil {
		return fmt.Errorf("failed to render grid: %w", err)
	}

	return writeOutput(cmd, gridOutput, buf.String())
}

// resolveColor looks up a colour by xterm code or by name.
func resolveColor(p *xterm256.Palette, arg string) (*xterm256.Color, error) {
	if code, err := strconv.Atoi(arg); err == nil {
		c, ok := p.ByCode(code)
		if !ok {
			return nil, fmt.Errorf("no colour with code %d", code)
		}
		return c, nil
	}

	c, ok := p.ByName(arg)
	if !ok {
		return nil, fmt.Errorf("no colour named %q", arg)
	}
	return c, nil
}
