package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/verikit/internal/job"
)

func newMatchCommand(a *app) *cobra.Command {
	var text, pattern string

	cmd := &cobra.Command{
		Use:     "match",
		Short:   "Find every occurrence of a pattern in a text",
		Example: `  verikit match --text AABAACAADAABAAABAA --pattern AABA`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.single(cmd.Context(), job.Job{
				Name:    "match",
				Kind:    job.KindMatch,
				Text:    text,
				Pattern: pattern,
			})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "text to search")
	cmd.Flags().StringVar(&pattern, "pattern", "", "pattern to find; empty matches nothing")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
