package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "pcbfixture",
	Short: "pcbfixture - generate PCB layout fixtures for tests",
	Long: `pcbfixture writes PCB layout text fixtures for exercising a PCB tool's
test suite. Fixtures come from built-in samples or JSON recipes.

Examples:
  pcbfixture list                          # List built-in samples
  pcbfixture sample mixed -o mixed.pcb     # Write a sample fixture
  pcbfixture gen board.json --check        # Build a recipe and check it
  pcbfixture check mixed.pcb               # Check an existing fixture`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
