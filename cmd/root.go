package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facetworks/facet/internal/app"
	"github.com/facetworks/facet/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "facet-gui <file>",
	Short: "Interactive triangle puzzle board",
	Long: `facet-gui opens a puzzle file in an interactive window.
Drag or click between vertices to draw edges; a triangle fills permanently
once all three of its edges are drawn. SVG triangulations are converted
on the fly.`,
	Version: version.GetFullVersion(),
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := app.Run(app.Options{
			Path:       args[0],
			ConfigPath: configPath,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default facet.yaml in the working directory)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
