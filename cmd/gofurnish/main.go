package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gofurnish/internal/logging"
	"github.com/philipparndt/gofurnish/version"
	"github.com/spf13/cobra"
)

var (
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "gofurnish",
	Short: "Furnish empty indoor scene shells with placed object models",
	Long: `gofurnish reconstructs a furnished indoor scene. It loads the architectural
shell, removes the ceiling, places every object listed in the placement
metadata at its recorded pose and exports one combined scene file.`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(os.Stderr, logging.Level(verbose, quiet))
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Log progress messages (-vv for debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
