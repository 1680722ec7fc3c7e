package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// List command flags
	listBright         bool
	listDark           bool
	listDifferentiated bool
	listBackground     bool
	listFormat         = newEnumFlag("swatch", "swatch", "hex", "json", "table")
	listOutput         string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List xterm-256 colours",
	Long: `List xterm-256 colours with their codes, names and RGB values.

By default every colour is listed as a coloured swatch line. The population
can be narrowed to bright colours, dark colours, or the curated set of
visually differentiated colours.

Examples:
  # List all 256 colours
  chroma256 list

  # List only the bright colours
  chroma256 list --bright

  # List the curated differentiated colours as JSON
  chroma256 list --differentiated --format json

  # List background-variant escape codes in a table
  chroma256 list --background --format table`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listBright, "bright", false, "only colours with perceived brightness >= 0.5")
	listCmd.Flags().BoolVar(&listDark, "dark", false, "only colours with perceived brightness < 0.5")
	listCmd.Flags().BoolVar(&listDifferentiated, "differentiated", false, "only the curated differentiated colours")
	listCmd.Flags().BoolVar(&listBackground, "background", false, "use background escape sequences")
	listCmd.Flags().VarP(listFormat, "format", "f", "output format (swatch, hex, json, table)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "output file (default: stdout)")
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	from := "all"
	set := 0
	if listBright {
		from = "bright"
		set++
	}
	if listDark {
		from = "dark"
		set++
	}
	if listDifferentiated {
		from = "differentiated"
		set++
	}
	if set > 1 {
		return fmt.Errorf("--bright, --dark and --differentiated are mutually exclusive")
	}

	palette := paletteFor(listBackground)
	colors, err := selectionFrom(palette, from)
	if err != nil {
		return err
	}

	logger.Debug("listing colours", "population", from, "count", len(colors), "format", listFormat.String())

	output, err := formatColors(colors, listFormat.String(), colourEnabled())
	if err != nil {
		return fmt.Errorf("failed to format colours: %w", err)
	}

	return writeOutput(cmd, listOutput, output)
}

// writeOutput writes command output to the given file, or to the command's
// stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, output string) error {
	if path == "" {
		cmd.Print(output)
		return nil
	}

	logger.Debug("writing output file", "path", path)
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
