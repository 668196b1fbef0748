// Package commands implements the verikit CLI commands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/verikit/internal/config"
	"github.com/katalvlaran/verikit/internal/job"
	"github.com/katalvlaran/verikit/internal/logging"
	"github.com/katalvlaran/verikit/internal/metrics"
	"github.com/katalvlaran/verikit/internal/render"
	"github.com/katalvlaran/verikit/internal/runner"
)

// ErrJobsFailed is returned by run when at least one job ended in error.
var ErrJobsFailed = errors.New("jobs failed")

// app carries what every command needs once flags and config are resolved.
type app struct {
	v       *viper.Viper
	cfgPath string
	noColor bool

	cfg *config.Config
	log *slog.Logger
	rec *metrics.Recorder

	out, errOut io.Writer
}

// NewRootCommand builds the verikit command tree writing results to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "verikit",
		Short: "Verification toolkit for trees, strings and weighted graphs",
		Long: `verikit runs three classic algorithms from the command line.

Commands:
  tree      Height, size, balance and BST validity of a binary tree
  match     All occurrences of a pattern in a text (Knuth–Morris–Pratt)
  paths     All-pairs shortest paths with negative-cycle detection
  run       Execute a YAML/JSON batch of jobs concurrently`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ./verikit.yaml, then $HOME/.config/verikit/verikit.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.StringP("output", "o", "", "output format: table, json, yaml")
	pf.IntP("workers", "w", 0, "concurrent jobs for run (default GOMAXPROCS)")
	pf.String("metrics-file", "", "write Prometheus metrics to this file after the command")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTreeCommand(a),
		newMatchCommand(a),
		newPathsCommand(a),
		newRunCommand(a),
	)

	return rootCmd
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	config.KeyLogLevel:      "log-level",
	config.KeyOutputFormat:  "output",
	config.KeyRunnerWorkers: "workers",
	config.KeyMetricsFile:   "metrics-file",
}

// setup binds flags, loads configuration and builds the logger and metrics
// recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for key, name := range flagKeys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	if cmd.Flags().Changed("no-color") {
		a.v.Set(config.KeyOutputColor, !a.noColor)
	}

	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}

	log, err := logging.New(a.errOut, cfg.Log)
	if err != nil {
		return err
	}

	a.cfg, a.log, a.rec = cfg, log, metrics.New()
	a.log.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(), "workers", cfg.Runner.Workers, "output", cfg.Output.Format)

	return nil
}

func (a *app) flushMetrics() error {
	if a.cfg == nil || a.cfg.Metrics.File == "" {
		return nil
	}
	if err := a.rec.WriteFile(a.cfg.Metrics.File); err != nil {
		return err
	}
	a.log.Debug("metrics written", "path", a.cfg.Metrics.File)

	return nil
}

// execute runs jobs, renders every result and returns them for the caller
// to derive an exit status. Metrics are written once the runner returns,
// whatever the outcome.
func (a *app) execute(ctx context.Context, jobs []job.Job) (results []runner.Result, err error) {
	r, err := render.New(a.out, render.Format(a.cfg.Output.Format), !a.cfg.Output.Color)
	if err != nil {
		return nil, err
	}

	defer func() {
		if ferr := a.flushMetrics(); ferr != nil {
			err = errors.Join(err, fmt.Errorf("write metrics: %w", ferr))
		}
	}()

	results, err = runner.New(a.cfg.Runner.Workers, a.log, a.rec).Run(ctx, jobs)
	if err != nil {
		return nil, err
	}

	if err := r.Results(results); err != nil {
		return nil, fmt.Errorf("render results: %w", err)
	}

	return results, nil
}

// single runs one job and turns its outcome into the command's error.
func (a *app) single(ctx context.Context, j job.Job) error {
	results, err := a.execute(ctx, []job.Job{j})
	if err != nil {
		return err
	}

	res := results[0]
	switch res.Status {
	case runner.StatusError:
		return res.Err
	case runner.StatusNegativeCycle:
		return res.NegativeCycle
	default:
		return nil
	}
}
