package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-forwardlist/internal/seqscript"
	"github.com/deploymenttheory/go-forwardlist/pkg/forwardlist"
)

var (
	// Script and output options (seq-specific)
	seqScriptPath string
	seqSeparator  string
	seqShowStats  bool
)

var seqCmd = &cobra.Command{
	Use:   "seq [values...]",
	Short: "Build a sequence and optionally run an edit script over it",
	Long: `Build a singly linked sequence from the given values, in order,
then apply an optional edit script and print the result.

Examples:
  # Print the sequence as-is
  forwardlist seq 1 2 3

  # Apply an edit script
  forwardlist seq b c --script edits.txt

  # Show the resulting size
  forwardlist seq 1 2 3 --stats`,

	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := LoadToolConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("separator") {
			config.Separator = seqSeparator
		}
		if seqShowStats {
			config.ShowStats = true
		}

		list := forwardlist.Of(args...)

		if seqScriptPath != "" {
			if err := runScript(list, seqScriptPath, config.MaxScriptOps); err != nil {
				return err
			}
		}

		if !quiet {
			fmt.Println(strings.Join(list.Values(), config.Separator))
		}
		if config.ShowStats {
			fmt.Printf("size: %d\n", list.Len())
		}
		return nil
	},
}

func runScript(list *forwardlist.List[string], path string, maxOps int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	ops, err := seqscript.Parse(f, maxOps)
	if err != nil {
		return fmt.Errorf("parsing script %s: %w", path, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "applying %d operations from %s\n", len(ops), path)
	}
	if err := seqscript.Apply(list, ops); err != nil {
		return fmt.Errorf("applying script %s: %w", path, err)
	}
	return nil
}

func init() {
	seqCmd.Flags().StringVar(&seqScriptPath, "script", "", "path to an edit script to apply")
	seqCmd.Flags().StringVar(&seqSeparator, "separator", " ", "separator between printed values")
	seqCmd.Flags().BoolVar(&seqShowStats, "stats", false, "print the resulting sequence size")

	rootCmd.AddCommand(seqCmd)
}
