package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/verikit/internal/job"
	"github.com/katalvlaran/verikit/internal/runner"
)

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Execute a batch document of jobs concurrently",
		Long: `Reads a YAML (or JSON) document with a top-level "jobs" list and runs every
job on a bounded worker pool. Use - to read from stdin. Jobs reporting a
negative cycle count as successful; the command exits non-zero only when
a job fails.`,
		Example: `  verikit run jobs.yaml --workers 4 -o json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			results, err := a.execute(cmd.Context(), doc.Jobs)
			if err != nil {
				return err
			}

			var failed int
			for i := range results {
				if results[i].Status == runner.StatusError {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d %w", failed, len(results), ErrJobsFailed)
			}

			return nil
		},
	}
}

func readDocument(stdin io.Reader, path string) (*job.Document, error) {
	if path == "-" {
		return job.Decode(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs: %w", err)
	}
	defer f.Close()

	return job.Decode(f)
}
