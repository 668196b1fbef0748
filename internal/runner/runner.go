// Package runner executes independent jobs concurrently.
//
// Jobs share nothing, so they fan out over an errgroup bounded by the
// configured worker count. Results land in a slice indexed like the input,
// keeping output order deterministic regardless of scheduling. A negative
// cycle is an ordinary result, not a runner failure; only context
// cancellation stops the batch.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/verikit/apsp"
	"github.com/katalvlaran/verikit/bintree"
	"github.com/katalvlaran/verikit/internal/job"
	"github.com/katalvlaran/verikit/internal/logging"
	"github.com/katalvlaran/verikit/internal/metrics"
	"github.com/katalvlaran/verikit/kmp"
)

// Status of a finished job.
type Status string

// Statuses. StatusNegativeCycle is a successful paths job whose graph has
// no distance matrix.
const (
	StatusOK            Status = metrics.OutcomeOK
	StatusNegativeCycle Status = metrics.OutcomeNegativeCycle
	StatusError         Status = metrics.OutcomeError
)

// Result is the outcome of one job. Exactly one of Tree, Matches or
// Distances is set for StatusOK; NegativeCycle is set for
// StatusNegativeCycle; Err for StatusError.
type Result struct {
	Name     string
	Kind     job.Kind
	Status   Status
	Duration time.Duration

	Tree          *bintree.Result
	Matches       []int
	Distances     *apsp.DistanceMatrix
	NegativeCycle *apsp.NegativeCycleError
	Err           error
}

// Runner runs batches of jobs.
type Runner struct {
	workers int
	log     *slog.Logger
	rec     *metrics.Recorder
}

// New returns a Runner. workers < 1 is treated as 1; a nil logger or
// recorder disables that concern.
func New(workers int, log *slog.Logger, rec *metrics.Recorder) *Runner {
	if log == nil {
		log = logging.Discard()
	}
	return &Runner{workers: max(workers, 1), log: log, rec: rec}
}

// Run executes jobs and returns one Result per job, in input order. The
// returned error is non-nil only if ctx was cancelled; results of jobs that
// never started are left with zero Status. Every log line of the batch
// carries a fresh run_id.
func (r *Runner) Run(ctx context.Context, jobs []job.Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	log := r.log.With("run_id", uuid.NewString())

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range jobs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.execute(log, &jobs[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("run jobs: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("run jobs: %w", err)
	}

	log.Info("batch finished", "jobs", len(jobs), "workers", r.workers)

	return results, nil
}

// Execute runs a single job synchronously.
func (r *Runner) Execute(j *job.Job) Result {
	return r.execute(r.log, j)
}

func (r *Runner) execute(log *slog.Logger, j *job.Job) Result {
	res := Result{Name: j.Name, Kind: j.Kind}
	start := time.Now()

	switch j.Kind {
	case job.KindTree:
		tr := bintree.Analyze(j.Root())
		res.Tree = &tr
		res.Status = StatusOK

	case job.KindMatch:
		res.Matches = kmp.FindAllString(j.Text, j.Pattern)
		res.Status = StatusOK

	case job.KindPaths:
		r.solve(j, &res)

	default:
		res.Status = StatusError
		res.Err = fmt.Errorf("%w: %q", job.ErrUnknownKind, j.Kind)
	}

	res.Duration = time.Since(start)
	r.record(log, &res)

	return res
}

func (r *Runner) solve(j *job.Job, res *Result) {
	g, err := j.BuildGraph()
	if err != nil {
		res.Status, res.Err = StatusError, err
		return
	}

	var opts []apsp.Option
	if j.Paths {
		opts = append(opts, apsp.WithPaths())
	}

	dm, err := apsp.Solve(g, opts...)
	var nc *apsp.NegativeCycleError
	switch {
	case errors.As(err, &nc):
		res.Status, res.NegativeCycle = StatusNegativeCycle, nc
	case err != nil:
		res.Status, res.Err = StatusError, err
	default:
		res.Status, res.Distances = StatusOK, dm
	}
}

func (r *Runner) record(log *slog.Logger, res *Result) {
	switch res.Status {
	case StatusError:
		log.Warn("job failed", "job", res.Name, "kind", res.Kind, "error", res.Err)
	case StatusNegativeCycle:
		log.Debug("job finished", "job", res.Name, "kind", res.Kind, "status", res.Status,
			"vertex", res.NegativeCycle.Vertex, "duration", res.Duration)
	default:
		log.Debug("job finished", "job", res.Name, "kind", res.Kind, "status", res.Status, "duration", res.Duration)
	}

	if r.rec != nil {
		r.rec.Observe(string(res.Kind), string(res.Status), res.Duration)
	}
}
