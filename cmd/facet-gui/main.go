package main

import "github.com/facetworks/facet/cmd"

func main() {
	cmd.Execute()
}
