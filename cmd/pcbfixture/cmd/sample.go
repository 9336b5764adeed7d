package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/pcbfixture/pkg/samples"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <name>",
	Short: "Write a built-in sample fixture",
	Long: `Write one of the built-in sample boards. Run "pcbfixture list" to see
the available names.

Examples:
  pcbfixture sample polygon-holes
  pcbfixture sample mixed -o /tmp/mixed.pcb --check`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in sample fixtures",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(listCmd)
	addOutputFlags(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	name := args[0]
	log.WithField("sample", name).Debug("building sample")

	board, err := samples.Build(name)
	if err != nil {
		return err
	}
	return writeBoard(cmd, board)
}

func runList(cmd *cobra.Command, args []string) error {
	for _, name := range samples.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
