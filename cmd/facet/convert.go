package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facetworks/facet/pkg/svgconv"
)

var convertForce bool

var convertCmd = &cobra.Command{
	Use:   "convert [input.svg] [output.tri]",
	Short: "Convert an SVG triangulation into a puzzle file",
	Long: `Convert extracts the filled triangle polygons of an SVG document and
writes them as puzzle mesh text: vertices first, then colors, then triangles.
Without an output argument the puzzle is written next to the input.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false, "Overwrite the output file if it exists")
}

func runConvert(cmd *cobra.Command, args []string) {
	input := args[0]
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".tri"
	if len(args) == 2 {
		output = args[1]
	}

	if !convertForce {
		if _, err := os.Stat(output); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", output)
			os.Exit(1)
		}
	}

	if err := svgconv.ConvertFile(input, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error converting file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", output)
}
