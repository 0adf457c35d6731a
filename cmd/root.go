package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global output flags only
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "forwardlist",
	Short: "Singly linked sequence toolkit",
	Long: `forwardlist is a small command-line companion to the forwardlist
library. It builds singly linked sequences from arguments, applies
line-oriented edit scripts (push/pop/insert/erase/clear) against them,
and prints the resulting sequence.

Commands:
  seq    Build a sequence and optionally run an edit script over it`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
}
