package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facetworks/facet/internal/app"
	"github.com/facetworks/facet/pkg/puzzle"
	"github.com/facetworks/facet/pkg/tri"
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Play a puzzle in the terminal",
	Long: `Play runs a puzzle session on stdin. Commands:
  A B    draw the edge between vertices A and B
  d A B  remove the edge between A and B
  x A    remove the removable edges around vertex A
  q      quit`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	mesh, err := app.LoadMesh(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing puzzle file: %v\n", err)
		os.Exit(1)
	}

	state := puzzle.NewState(mesh)
	fmt.Printf("Loaded %s: %d vertices, %d triangles\n",
		args[0], mesh.VertexCount(), mesh.TriangleCount())

	scanner := bufio.NewScanner(os.Stdin)
	printPrompt(state, mesh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			printPrompt(state, mesh)
			continue
		}
		if line == "q" || line == "quit" {
			return
		}

		before := state.UnlockedCount()
		if err := applyCommand(state, mesh, line); err != nil {
			fmt.Printf("error: %v\n", err)
		} else if n := state.UnlockedCount() - before; n == 1 {
			fmt.Println("Triangle unlocked!")
		} else if n > 1 {
			fmt.Printf("%d triangles unlocked!\n", n)
		}

		if state.Finished() {
			fmt.Println("Puzzle complete!")
			return
		}
		printPrompt(state, mesh)
	}
}

func printPrompt(state *puzzle.State, mesh *tri.Mesh) {
	fmt.Printf("[edges %d, triangles %d/%d] > ",
		state.ConnectedEdgeCount(), state.UnlockedCount(), mesh.TriangleCount())
}

func applyCommand(state *puzzle.State, mesh *tri.Mesh, line string) error {
	fields := strings.Fields(line)

	switch {
	case len(fields) == 2 && fields[0] == "x":
		v, err := strconv.Atoi(fields[1])
		if err != nil || v < 0 || v >= mesh.VertexCount() {
			return fmt.Errorf("invalid vertex %q", fields[1])
		}
		state.DisconnectVertex(v)
		return nil

	case len(fields) == 3 && fields[0] == "d":
		edge, err := parseEdge(mesh, fields[1], fields[2])
		if err != nil {
			return err
		}
		state.Disconnect(edge)
		return nil

	case len(fields) == 2:
		edge, err := parseEdge(mesh, fields[0], fields[1])
		if err != nil {
			return err
		}
		state.Connect(edge)
		return nil
	}

	return fmt.Errorf("unknown command %q", line)
}

func parseEdge(mesh *tri.Mesh, a, b string) (tri.Edge, error) {
	va, err1 := strconv.Atoi(a)
	vb, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil {
		return tri.Edge{}, fmt.Errorf("vertices must be numbers")
	}

	edge := tri.NewEdge(va, vb)
	if va == vb || !mesh.IsValidEdge(edge) {
		return tri.Edge{}, fmt.Errorf("no edge between %d and %d", va, vb)
	}
	return edge, nil
}
