package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/verikit/internal/job"
)

func newTreeCommand(a *app) *cobra.Command {
	var values string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Analyze a binary tree given in level order",
		Example: `  verikit tree --values '[10, 5, 15, null, 7]'
  verikit tree --values '[]' -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := job.ParseTree(values)
			if err != nil {
				return err
			}
			return a.single(cmd.Context(), job.Job{Name: "tree", Kind: job.KindTree, Tree: tree})
		},
	}

	cmd.Flags().StringVar(&values, "values", "", "level-order values, null for an absent child")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}
