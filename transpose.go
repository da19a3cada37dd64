package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kestrelpress/playsheet/transpose"
)

var transposeCmd = &cobra.Command{
	Use:   "transpose <input.md> [output.md]",
	Short: "Swap the heading levels of an outline markdown file",
	Long: `Transpose flips the two heading levels of an outline: every ##
grouping becomes a top-level # section and vice versa, with all content
preserved. Without an output path the result is written next to the
input as <stem>_transposed.md.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		inputPath := args[0]
		outputPath := ""
		if len(args) == 2 {
			outputPath = args[1]
		} else {
			ext := filepath.Ext(inputPath)
			outputPath = strings.TrimSuffix(inputPath, ext) + "_transposed" + ext
		}

		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("cannot open input file %s: %w", inputPath, err)
		}
		rendered := transpose.Transpose(splitLines(string(data)))
		if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outputPath, err)
		}
		fmt.Printf("Wrote transposed markdown to %s\n", outputPath)
		return nil
	},
}

// splitLines splits text into lines without their terminators.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func init() {
	rootCmd.AddCommand(transposeCmd)
}
