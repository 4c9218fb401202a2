package main

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/facetworks/facet/internal/app"
	"github.com/facetworks/facet/pkg/analysis"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
)

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze triangles in a puzzle file",
	Long:  "Display information about triangles including area, perimeter and color index.",
	Args:  cobra.ExactArgs(1),
	Run:   runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
}

func runTriangles(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := app.LoadMesh(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing puzzle file: %v\n", err)
		os.Exit(1)
	}

	triangles := analysis.Triangles(mesh)
	if len(triangles) == 0 {
		fmt.Println("No triangles in puzzle.")
		return
	}

	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0
	for _, tri := range triangles {
		totalArea += tri.Area
		if tri.Area < minArea {
			minArea = tri.Area
		}
		if tri.Area > maxArea {
			maxArea = tri.Area
		}
	}

	var title string
	if triLargest {
		sort.Slice(triangles, func(i, j int) bool {
			return triangles[i].Area > triangles[j].Area
		})
		title = fmt.Sprintf("Top %d Largest Triangles", triCount)
	} else if triSmallest {
		sort.Slice(triangles, func(i, j int) bool {
			return triangles[i].Area < triangles[j].Area
		})
		title = fmt.Sprintf("Top %d Smallest Triangles", triCount)
	} else {
		title = fmt.Sprintf("First %d Triangles", triCount)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total triangles: %d\n", len(triangles))
	fmt.Printf("Total area: %.6f square units\n", totalArea)
	fmt.Printf("Min triangle area: %.6f square units\n", minArea)
	fmt.Printf("Max triangle area: %.6f square units\n", maxArea)
	fmt.Printf("Avg triangle area: %.6f square units\n\n", totalArea/float64(len(triangles)))

	if triCount > len(triangles) {
		triCount = len(triangles)
	}

	for i := 0; i < triCount; i++ {
		info := triangles[i]
		t := mesh.Triangle(info.ID)

		fmt.Printf("Triangle #%d:\n", info.ID)
		fmt.Printf("  Vertices: %d, %d, %d\n", t.V0, t.V1, t.V2)
		fmt.Printf("  Color index: %d\n", info.Color)
		fmt.Printf("  Area: %.6f square units\n", info.Area)
		fmt.Printf("  Perimeter: %.6f units\n\n", info.Perimeter)
	}
}
