package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facetworks/facet/version"
)

var rootCmd = &cobra.Command{
	Use:   "facet",
	Short: "A command-line tool for triangle puzzle files",
	Long: `facet inspects, converts and plays triangle puzzle files.
A puzzle is a triangulated mesh; the player draws edges between vertices,
and a triangle fills permanently once all three of its edges are drawn.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
