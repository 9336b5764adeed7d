package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/pcbfixture/pkg/recipe"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen <recipe.json>",
	Short: "Build a fixture from a JSON recipe",
	Long: `Build a fixture board from a JSON recipe describing its layers and
objects. Fields left out of an object take the builder defaults.

Examples:
  pcbfixture gen board.json
  pcbfixture gen board.json -o board.pcb --check`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
	addOutputFlags(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log.WithField("recipe", filename).Debug("loading recipe")

	r, err := recipe.Load(filename)
	if err != nil {
		return fmt.Errorf("error loading recipe: %w", err)
	}
	return writeBoard(cmd, r.Build())
}
