package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/solve"
)

func (a *app) newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Solve one maze and write the moves to a file",
		Long: `Solve one maze and write the moves to a file.

Examples:
  mazepath solve
  mazepath solve maze.txt -o path.txt
  mazepath solve maze.txt --solver astar --max-steps 100000`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSolve,
	}
	solveCmd.Flags().StringVarP(&a.output, "output", "o", "", "Output file for the moves")

	return solveCmd
}

// runSolve writes the moves only when a path exists; no path is logged and
// is not an error.
func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	output := a.cfg.Output
	if cmd.Flags().Changed("output") {
		output = a.output
	}

	p, err := mazefile.Load(a.cfg.Input)
	if err != nil {
		return err
	}
	a.log.Debug("maze loaded",
		slog.String("input", a.cfg.Input),
		slog.Int("rows", p.Grid.Rows),
		slog.Int("cols", p.Grid.Cols),
		slog.String("start", p.Start.String()),
		slog.String("end", p.End.String()))

	ctx, cancel := a.searchContext(cmd.Context())
	defer cancel()
	out, err := solve.Run(ctx, a.cfg.Solver, p.Grid, p.Start, p.End, a.cfg.MaxSteps)
	if err != nil {
		return err
	}

	if !out.Found {
		a.log.Warn("no path found",
			slog.String("solver", a.cfg.Solver),
			slog.Int("explored", out.Explored))
		return nil
	}
	if err = mazefile.WriteFile(output, out.Directions); err != nil {
		return err
	}
	a.log.Info("path written",
		slog.String("output", output),
		slog.String("solver", a.cfg.Solver),
		slog.Int("moves", len(out.Directions)),
		slog.Int("explored", out.Explored))

	return nil
}
