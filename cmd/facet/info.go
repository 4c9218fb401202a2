package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facetworks/facet/internal/app"
	"github.com/facetworks/facet/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a puzzle file",
	Long:  "Show counts, bounds, dimensions and edge statistics for a .tri or .svg puzzle.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := app.LoadMesh(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing puzzle file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(mesh)

	fmt.Println("Puzzle File Information")
	fmt.Println("=======================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Colors: %d\n", result.ColorCount)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d (%d boundary, %d interior)\n", result.EdgeCount, result.BoundaryEdges, result.InteriorEdges)
	fmt.Printf("  Max vertex degree: %d\n\n", result.MaxDegree)

	fmt.Println("Bounds:")
	fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatPoint(result.Bounds.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.Bounds.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
