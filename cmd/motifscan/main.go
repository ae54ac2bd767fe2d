// Command motifscan enumerates, classifies, and statistically evaluates
// network motifs in directed or undirected graphs.
package main

import "github.com/motifscan/motifscan/cmd/motifscan/cmd"

func main() {
	cmd.Execute()
}
