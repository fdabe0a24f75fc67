package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsum/batch"
	"github.com/katalvlaran/stepsum/problem"
	"github.com/katalvlaran/stepsum/stepgraph"
)

// globalFlags are shared by every sub-command.
type globalFlags struct {
	logLevel     string
	strategy     string
	predecessors bool
	jsonOutput   bool
	workers      int
	offsets      []int
	values       []int64
	logger       *slog.Logger
	graphOptions []stepgraph.Option
}

func newRootCmd() *cobra.Command {
	f := &globalFlags{}

	root := &cobra.Command{
		Use:   "stepsum",
		Short: "Maximum-sum walks over a value array with fixed step offsets",
		Long: `stepsum starts at index 0 of an array and repeatedly jumps forward by one
of the configured offsets, stopping anywhere. It reports the best reachable
sum and every walk that achieves it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return f.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&f.strategy, "strategy", stepgraph.StrategyBellmanFord.String(), "Relaxation strategy: bellman-ford or topological")
	root.PersistentFlags().BoolVar(&f.predecessors, "predecessor-paths", false, "Print paths as the terminal's predecessors only (omit the terminal index)")
	root.PersistentFlags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")

	solveCmd := &cobra.Command{
		Use:   "solve <problems.yaml>",
		Short: "Solve every problem in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.runSolve(cmd, args[0])
		},
	}
	solveCmd.Flags().IntVar(&f.workers, "workers", 0, "Problems solved in parallel (0 = number of CPUs)")

	runCmd := &cobra.Command{
		Use:   "run [values...]",
		Short: "Solve a single array given on the command line",
		Example: `  stepsum run --offsets 3,4 --values=14,28,79,-87,29,34,-7,65,-11,91,32,27,-5
  stepsum run -- 14 28 79 -87 29`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.runSingle(cmd, args)
		},
	}
	runCmd.Flags().IntSliceVar(&f.offsets, "offsets", problem.DefaultOffsets, "Comma-separated positive step offsets")
	runCmd.Flags().Int64SliceVar(&f.values, "values", nil, "Comma-separated array values")

	root.AddCommand(solveCmd, runCmd)

	return root
}

// setup builds the logger and the PathGraph options from flags.
func (f *globalFlags) setup(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", f.logLevel, err)
	}
	f.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	strategy, err := stepgraph.ParseStrategy(f.strategy)
	if err != nil {
		return err
	}
	f.graphOptions = []stepgraph.Option{
		stepgraph.WithStrategy(strategy),
		stepgraph.WithLogger(f.logger),
	}
	if f.predecessors {
		f.graphOptions = append(f.graphOptions, stepgraph.WithPredecessorPaths())
	}

	return nil
}

func (f *globalFlags) runSolve(cmd *cobra.Command, path string) error {
	file, err := problem.Load(path)
	if err != nil {
		return err
	}
	f.logger.Info("solving problems", "file", path, "count", len(file.Problems), "workers", f.workers)

	results, err := batch.Solve(cmd.Context(), file.Problems, f.workers, f.graphOptions...)
	if err != nil {
		return err
	}

	return f.print(cmd.OutOrStdout(), results)
}

func (f *globalFlags) runSingle(cmd *cobra.Command, args []string) error {
	values := append([]int64(nil), f.values...)
	for _, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", a, err)
		}
		values = append(values, v)
	}

	p := problem.Problem{Name: "input", Offsets: f.offsets, Values: values}
	res, err := batch.SolveOne(p, f.graphOptions...)
	if err != nil {
		return err
	}

	return f.print(cmd.OutOrStdout(), []batch.Result{res})
}

func (f *globalFlags) print(w io.Writer, results []batch.Result) error {
	if f.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s: max=%d discovered=%d\n", r.Name, r.MaxSum, r.Discovered)
		for _, p := range r.Paths {
			fmt.Fprintf(w, "  path: %s\n", formatPath(p))
		}
	}

	return nil
}

func formatPath(p []int) string {
	if len(p) == 0 {
		return "(none)"
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}

	return strings.Join(parts, " -> ")
}
