// chroma256 - explore the xterm-256 terminal colour palette
//
// chroma256 lists the named xterm-256 colours, renders pairwise comparison
// grids, and selects visually differentiated colour subsets using perceptual
// colour distance.
package main

import (
	"github.com/chroma256/chroma256/internal/cli"
)

func main() {
	cli.Execute()
}
