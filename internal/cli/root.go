// Package cli provides the command-line interface for chroma256.
package cli

import (
	"io"
	"os"

	"github.com/chroma256/chroma256/internal/version"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Global flags
	flagVerbose bool
	flagNoColor bool

	// logger is the shared command logger, configured in the root
	// PersistentPreRun according to --verbose.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chroma256",
		Short: "Explore the xterm-256 terminal colour palette",
		Long: `chroma256 is a CLI for the xterm-256 terminal colour palette.

It lists named colours with their codes and RGB values, renders pairwise
comparison grids, and selects visually differentiated colour subsets using
perceptual (Delta-E 2000) colour distance.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Off
			output := io.Writer(io.Discard)
			if flagVerbose {
				level = hclog.Debug
				output = os.Stderr
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "chroma256",
				Output: output,
				Level:  level,
			})
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable coloured output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(distinctCmd)
}

// colourEnabled reports whether escape sequences should be emitted.
// Disabled by --no-color, the NO_COLOR convention, or a non-terminal stdout.
func colourEnabled() bool {
	if flagNoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
