package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/verikit/internal/job"
)

func newPathsCommand(a *app) *cobra.Command {
	var (
		graph, file string
		withPaths   bool
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "All-pairs shortest paths (Floyd–Warshall)",
		Long: `Computes shortest distances between every pair of vertices of a weighted
directed graph given as an adjacency matrix. Use inf (or null) for a
missing edge. A graph containing a negative cycle has no distance matrix;
the command reports the cycle's vertices and exits non-zero.`,
		Example: `  verikit paths --graph '[[0, 3, inf, 5], [2, 0, inf, 4], [inf, 1, 0, inf], [inf, inf, 2, 0]]'
  verikit paths --file graph.yaml --paths`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := graph
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read graph: %w", err)
				}
				src = string(data)
			}

			cells, err := job.ParseGraph(src)
			if err != nil {
				return err
			}

			return a.single(cmd.Context(), job.Job{Name: "paths", Kind: job.KindPaths, Graph: cells, Paths: withPaths})
		},
	}

	cmd.Flags().StringVar(&graph, "graph", "", "inline adjacency matrix")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file holding the adjacency matrix")
	cmd.Flags().BoolVar(&withPaths, "paths", false, "also reconstruct one shortest route per pair")
	cmd.MarkFlagsMutuallyExclusive("graph", "file")
	cmd.MarkFlagsOneRequired("graph", "file")

	return cmd
}
