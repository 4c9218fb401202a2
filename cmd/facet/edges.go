package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facetworks/facet/internal/app"
	"github.com/facetworks/facet/pkg/analysis"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in a puzzle file",
	Long:  "Find and measure mesh edges, including longest, shortest, or edges within a specific length range.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
}

func runEdges(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := app.LoadMesh(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing puzzle file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(mesh)

	var edges []analysis.EdgeInfo
	var title string

	if edgesLongest {
		edges = analysis.LongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	} else if edgesShortest {
		edges = analysis.ShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else if edgesMaxLength > 0 {
		edges = analysis.EdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	} else {
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", edgesCount, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in mesh: %d\n", result.EdgeCount)
	fmt.Printf("Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("Avg edge length: %.6f units\n\n", result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Println("No edges found matching the criteria.")
		return
	}

	fmt.Printf("%-10s %-26s %-26s %-14s %s\n", "Edge", "Start", "End", "Length", "Triangles")
	fmt.Println("------------------------------------------------------------------------------------------")
	for _, e := range edges {
		fmt.Printf("%-10s %-26s %-26s %-14.6f %d\n",
			fmt.Sprintf("%d-%d", e.Edge.A, e.Edge.B),
			analysis.FormatPoint(mesh.Vertex(e.Edge.A)),
			analysis.FormatPoint(mesh.Vertex(e.Edge.B)),
			e.Length,
			e.Triangles)
	}
}
