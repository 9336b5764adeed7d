package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/OpenTraceLab/pcbfixture/pkg/pcbfile"
	"github.com/OpenTraceLab/pcbfixture/pkg/pcbfile/pcblex"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flags shared by the commands that write a fixture
var (
	outputPath  string
	checkOutput bool
)

func addOutputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the fixture to this file instead of stdout")
	c.Flags().BoolVar(&checkOutput, "check", false,
		"check the generated text before writing it")
}

// writeBoard serializes the board, optionally checks it, and writes it to
// the output file or the command's stdout.
func writeBoard(cmd *cobra.Command, board *pcbfile.Board) error {
	var buf bytes.Buffer
	if _, err := board.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize board: %w", err)
	}

	if checkOutput {
		sum, err := pcblex.Check(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return fmt.Errorf("generated fixture failed check: %w", err)
		}
		log.WithField("records", sum.Records).Debug("fixture checked")
	}

	if outputPath == "" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write fixture to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	log.WithFields(logrus.Fields{
		"file":   outputPath,
		"bytes":  buf.Len(),
		"layers": len(board.Layers()),
	}).Info("fixture written")
	return nil
}
