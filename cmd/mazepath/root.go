package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/config"
)

// app carries the resolved configuration and logger shared by all commands.
type app struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer
	err io.Writer

	envFile  string
	logLevel string
	output   string
	solver   string
	maxSteps int
	timeout  time.Duration
}

// newRootCmd builds the command tree. The root command itself runs solve.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, err: stderr}

	rootCmd := &cobra.Command{
		Use:   "mazepath [input]",
		Short: "Find the shortest path through a grid maze",
		Long: `Find the shortest path through a grid maze.

The input file holds the start point, the end point and the grid:

  (0,0)
  (2,2)
  0 0 1
  1 0 1
  1 0 0

Cells 0 and 1 are open, anything else is a wall. The moves are written to
the output file as "Right, Right, Down, Down". Without a subcommand the
solve command runs.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSolve,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "Dotenv file to load (missing file is ignored)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVarP(&a.solver, "solver", "s", "", "Solver: bfs, dfs or astar")
	pf.IntVar(&a.maxSteps, "max-steps", 0, "Stop a search after this many expansions (0 = unlimited)")
	pf.DurationVar(&a.timeout, "timeout", 0, "Per-search deadline, e.g. 5s (0 = none)")
	rootCmd.Flags().StringVarP(&a.output, "output", "o", "", "Output file for the moves")

	rootCmd.AddCommand(a.newSolveCmd(), a.newBenchCmd(), a.newServeCmd())

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = config.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}
	if flags.Changed("solver") {
		cfg.Solver = a.solver
	}
	if flags.Changed("max-steps") {
		if a.maxSteps < 0 {
			return fmt.Errorf("%w: --max-steps must be a non-negative integer, got %d", config.ErrInvalidConfig, a.maxSteps)
		}
		cfg.MaxSteps = a.maxSteps
	}
	if flags.Changed("timeout") {
		if a.timeout < 0 {
			return fmt.Errorf("%w: --timeout must be a non-negative duration, got %s", config.ErrInvalidConfig, a.timeout)
		}
		cfg.Timeout = a.timeout
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.err, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With(slog.String("component", "cli"))

	return nil
}

// searchContext applies the configured per-search deadline.
func (a *app) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Timeout)
	}
	return context.WithCancel(parent)
}
