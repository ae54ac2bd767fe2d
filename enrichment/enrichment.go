// Package enrichment builds a null distribution of motif abundances from
// degree-preserving randomized graphs and scores each observed motif's
// deviation from that null model with a z-score, the way a motif-finder's
// "significance profile" step does.
package enrichment

import (
	"math"
	"math/rand"
	"sort"

	"github.com/motifscan/motifscan/bitgraph"
	"github.com/motifscan/motifscan/motif"
	"github.com/motifscan/motifscan/switching"
)

// Result is the per-motif significance profile produced by Run.
type Result struct {
	Subgraphs           []string
	Abundances          []uint64
	Frequencies         []float64
	MeanRandomFrequency []float64
	StdRandomFrequency  []float64
	ZScores             []float64
}

// Driver runs one real enumeration and RandomGraphs switched-graph
// enumerations to build each observed motif's null distribution.
type Driver struct {
	Graph        *bitgraph.BitGraph
	K            int
	RandomGraphs int
	Q            int
	Seed         int64
}

// Run executes the enrichment pipeline. It is single-threaded and
// deterministic given the same Seed: each of the RandomGraphs switched
// graphs is generated from its own *rand.Rand, seeded as Seed+i+1 so runs
// never collide with each other or with a caller's own use of Seed.
func (d *Driver) Run() (*Result, error) {
	real := motif.NewDriver(d.Graph, d.K)
	realRes, err := real.Enumerate()
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(realRes.Counts))
	for label := range realRes.Counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	nullCounts := make(map[string][]uint64, len(labels))
	for _, label := range labels {
		nullCounts[label] = make([]uint64, 0, d.RandomGraphs)
	}

	edges := d.Graph.Edges()
	n := d.Graph.N()
	directed := d.Graph.Directed()

	for i := 0; i < d.RandomGraphs; i++ {
		r := rand.New(rand.NewSource(d.Seed + int64(i) + 1))
		sw := switching.New(r)
		randomEdges := sw.Switch(n, edges, directed, d.Q)

		randomGraph, err := bitgraph.Build(n, randomEdges, directed)
		if err != nil {
			return nil, err
		}
		randomRes, err := motif.NewDriver(randomGraph, d.K).Enumerate()
		if err != nil {
			return nil, err
		}
		for _, label := range labels {
			nullCounts[label] = append(nullCounts[label], randomRes.Counts[label])
		}
	}

	res := &Result{
		Subgraphs:           labels,
		Abundances:          make([]uint64, len(labels)),
		Frequencies:         make([]float64, len(labels)),
		MeanRandomFrequency: make([]float64, len(labels)),
		StdRandomFrequency:  make([]float64, len(labels)),
		ZScores:             make([]float64, len(labels)),
	}
	for i, label := range labels {
		abundance := realRes.Counts[label]
		res.Abundances[i] = abundance
		if realRes.Total > 0 {
			res.Frequencies[i] = float64(abundance) / float64(realRes.Total)
		}

		counts := nullCounts[label]
		mean, std := meanStd(counts)
		res.MeanRandomFrequency[i] = mean
		res.StdRandomFrequency[i] = std

		z := (float64(abundance) - mean) / std
		if std < 1e-12 || math.IsNaN(z) || math.IsInf(z, 0) {
			z = 0
		}
		res.ZScores[i] = z
	}
	return res, nil
}

// meanStd returns the population mean and population standard deviation of
// counts (not the sample correction): the null distribution is the full set
// of R observations, not a sample drawn from a larger population.
func meanStd(counts []uint64) (mean, std float64) {
	if len(counts) == 0 {
		return 0, 0
	}
	var sum float64
	for _, c := range counts {
		sum += float64(c)
	}
	mean = sum / float64(len(counts))

	var sq float64
	for _, c := range counts {
		diff := float64(c) - mean
		sq += diff * diff
	}
	std = math.Sqrt(sq / float64(len(counts)))
	return mean, std
}
