package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/motifscan/motifscan/config"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "motifscan",
	Short: "Enumerate, classify, and statistically evaluate network motifs",
	Long: `motifscan enumerates every induced connected subgraph of a fixed size k
in a directed or undirected graph, groups occurrences by isomorphism class
via canonical labeling, and reports global counts and per-vertex role
memberships. It also supports a degree-preserving random-graph switcher and
an enrichment mode that compares observed motif frequencies against the
resulting null distribution.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		var handler slog.Handler
		if cfg.Log.Format == "json" {
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		} else {
			handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		}
		log = slog.New(handler)
		return nil
	},
}

// RootCmd exposes the root command for testing.
func RootCmd() *cobra.Command { return rootCmd }

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./motifscan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Example = `  # Count motifs of size 3 in a directed graph
  motifscan enumerate -i graph.txt -o counts.tsv -k 3

  # Same, but also report per-vertex orbit membership
  motifscan groups -i graph.txt -o groups.tsv -k 3

  # Produce a degree-preserving random rewiring
  motifscan switch -i graph.txt -o switched.txt --q 50 --seed 7

  # Compare observed motif frequencies against a random ensemble
  motifscan enrich -i graph.txt -o enrichment.tsv -k 3 --random-graphs 1000

  # Re-index an arbitrary-label edge list into numeric ids
  motifscan format -i labeled.txt -o graph --filter-loops`
}
