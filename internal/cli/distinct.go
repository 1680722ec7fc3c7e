package cli

import (
	"fmt"

	"github.com/chroma256/chroma256/pkg/xterm256"
	"github.com/spf13/cobra"
)

var (
	// Distinct command flags
	distinctCount      int
	distinctMinDist    float64
	distinctFrom       = newEnumFlag("differentiated", "all", "bright", "dark", "differentiated")
	distinctFormat     = newEnumFlag("swatch", "swatch", "hex", "json", "table")
	distinctBackground bool
	distinctOutput     string
)

// distinctCmd represents the distinct command
var distinctCmd = &cobra.Command{
	Use:   "distinct",
	Short: "Select visually differentiated colours",
	Long: `Select a subset of colours that are mutually as distinguishable as
possible under perceptual (Delta-E 2000) colour distance.

The selection is a greedy farthest-point heuristic: the two farthest-apart
colours seed the subset, then each round adds the candidate with the highest
mean distance to the colours already chosen. With --min-dist, candidates
closer than the threshold to any chosen colour are skipped; if the threshold
leaves no eligible candidate, the result is smaller than requested.

Examples:
  # Pick 8 distinguishable colours from the curated population
  chroma256 distinct -n 8

  # Pick 16 from the bright colours, enforcing a minimum distance
  chroma256 distinct -n 16 --from bright --min-dist 12

  # Pick from the whole palette and emit JSON
  chroma256 distinct -n 10 --from all --format json`,
	Args: cobra.NoArgs,
	RunE: runDistinct,
}

func init() {
	distinctCmd.Flags().IntVarP(&distinctCount, "count", "n", 8, "number of colours to select")
	distinctCmd.Flags().Float64Var(&distinctMinDist, "min-dist", 0, "minimum pairwise distance between selected colours")
	distinctCmd.Flags().Var(distinctFrom, "from", "colour population (all, bright, dark, differentiated)")
	distinctCmd.Flags().VarP(distinctFormat, "format", "f", "output format (swatch, hex, json, table)")
	distinctCmd.Flags().BoolVar(&distinctBackground, "background", false, "use background escape sequences")
	distinctCmd.Flags().StringVarP(&distinctOutput, "output", "o", "", "output file (default: stdout)")
}

// runDistinct executes the distinct command.
func runDistinct(cmd *cobra.Command, args []string) error {
	palette := paletteFor(distinctBackground)
	colors, err := selectionFrom(palette, distinctFrom.String())
	if err != nil {
		return err
	}

	logger.Debug("building distance matrix", "colours", len(colors))
	matrix, err := xterm256.BuildMatrix(colors, xterm256.CIEDE2000)
	if err != nil {
		return fmt.Errorf("failed to build distance matrix: %w", err)
	}

	logger.Debug("selecting differentiated colours",
		"count", distinctCount, "min_dist", distinctMinDist)
	subset, err := xterm256.FindDifferentiated(colors, distinctCount,
		xterm256.WithMatrix(matrix),
		xterm256.WithMinDistance(distinctMinDist))
	if err != nil {
		return fmt.Errorf("failed to select colours: %w", err)
	}

	if len(subset) < distinctCount {
		logger.Debug("minimum distance constraint limited the selection",
			"requested", distinctCount, "selected", len(subset))
	}

	// The subset is unordered; sort by code for stable output.
	xterm256.SortByCode(subset)

	output, err := formatColors(subset, distinctFormat.String(), colourEnabled())
	if err != nil {
		return fmt.Errorf("failed to format colours: %w", err)
	}

	return writeOutput(cmd, distinctOutput, output)
}
