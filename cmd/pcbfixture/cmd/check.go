package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/pcbfixture/pkg/pcbfile/pcblex"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture_file>",
	Short: "Check that a fixture file is lexically well formed",
	Long: `Tokenize a fixture file, verify that every bracket is closed and print
how many records of each kind it holds. Geometry is not inspected.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	sum, err := pcblex.Check(file)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s is well formed\n", filename)
	fmt.Fprintf(out, "  Tokens: %d\n", sum.Tokens)
	fmt.Fprintf(out, "  Max depth: %d\n", sum.MaxDepth)
	fmt.Fprintf(out, "%-12s %6s\n", "Record", "Count")
	fmt.Fprintln(out, "───────────────────")
	for _, kw := range sum.Keywords() {
		fmt.Fprintf(out, "%-12s %6d\n", kw, sum.Count(kw))
	}
	return nil
}
