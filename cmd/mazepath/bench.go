package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/report"
)

func (a *app) newBenchCmd() *cobra.Command {
	var (
		solvers []string
		outFile string
	)
	benchCmd := &cobra.Command{
		Use:   "bench [input]",
		Short: "Compare solvers on one maze",
		Long: `Run several solvers on the same maze and report path length, explored
cells, time and allocation for each.

Examples:
  mazepath bench maze.txt
  mazepath bench maze.txt --solvers bfs,astar -o report.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, solvers, outFile)
		},
	}
	benchCmd.Flags().StringSliceVar(&solvers, "solvers", nil, "Solvers to run (default all)")
	benchCmd.Flags().StringVarP(&outFile, "output", "o", "", "Report file (default stdout)")

	return benchCmd
}

func (a *app) runBench(cmd *cobra.Command, solvers []string, outFile string) error {
	p, err := mazefile.Load(a.cfg.Input)
	if err != nil {
		return err
	}
	summary, err := report.Summarize(p.Grid, p.Start, p.End)
	if err != nil {
		return err
	}

	ctx, cancel := a.searchContext(cmd.Context())
	defer cancel()
	stats, err := report.Run(ctx, p.Grid, p.Start, p.End, a.cfg.MaxSteps, solvers...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = report.WriteSummary(&buf, summary); err != nil {
		return err
	}
	if err = report.Write(&buf, stats); err != nil {
		return err
	}

	if outFile == "" {
		_, err = a.out.Write(buf.Bytes())
		return err
	}
	if err = os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	a.log.Info("report written", slog.String("output", outFile), slog.Int("solvers", len(stats)))

	return nil
}
