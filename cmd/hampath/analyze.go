package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/exact"
	"github.com/katalvlaran/hampath/graphio"
	"github.com/katalvlaran/hampath/heuristic"
	"github.com/katalvlaran/hampath/perf"
)

// Algorithm selectors accepted by --algorithm.
const (
	algBacktracking = "bt"
	algHeuristic    = "heur"
	algBoth         = "both"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Search one graph file for a Hamiltonian path",
		Long: `Loads a graph in the "n m" / "u v" text format and runs the selected
searches through the performance monitor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, _ := cmd.Flags().GetString("algorithm")
			verbose, _ := cmd.Flags().GetBool("verbose")
			trace, _ := cmd.Flags().GetBool("trace")
			limit, _ := cmd.Flags().GetInt("trace-limit")
			seed, _ := cmd.Flags().GetInt64("seed")

			overrides := map[string]any{}
			if cmd.Flags().Changed("timeout") {
				overrides["timeout_seconds"], _ = cmd.Flags().GetInt("timeout")
			}
			if err := a.merge(overrides); err != nil {
				return err
			}

			switch alg {
			case algBacktracking, algHeuristic, algBoth:
			default:
				return fmt.Errorf("unknown algorithm %q (want %s, %s or %s)", alg, algBacktracking, algHeuristic, algBoth)
			}

			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			return a.analyze(cmd.Context(), cmd.OutOrStdout(), g, analyzeOptions{
				algorithm:  alg,
				verbose:    verbose,
				trace:      trace,
				traceLimit: limit,
				seed:       seed,
			})
		},
	}

	cmd.Flags().StringP("algorithm", "a", algBoth, "Search to run: bt, heur or both")
	cmd.Flags().BoolP("verbose", "v", false, "Print full memory statistics")
	cmd.Flags().Bool("trace", false, "Print the step sequence of the exact search")
	cmd.Flags().Int("trace-limit", 200, "Maximum trace events to print (0 = all)")
	cmd.Flags().Int64("seed", 1, "Seed of the heuristic's start order")
	cmd.Flags().Int("timeout", 0, "Per-search timeout in seconds, 0 disables (default: config value)")

	return cmd
}

type analyzeOptions struct {
	algorithm  string
	verbose    bool
	trace      bool
	traceLimit int
	seed       int64
}

func (a *app) analyze(ctx context.Context, w io.Writer, g *core.Graph, opts analyzeOptions) error {
	comps, err := graphio.Components(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v, %d component(s)\n", g, len(comps))
	if len(comps) > 1 {
		fmt.Fprintln(w, "graph is disconnected: no Hamiltonian path exists")
	}

	mon := perf.NewMonitor(perf.WithTimeoutSeconds(a.cfg.TimeoutSeconds))
	var exactStats, heurStats *perf.Stats

	if opts.algorithm != algHeuristic {
		res, st := perf.Measure(ctx, mon, perf.Task[core.Result]{
			Name:        "exact",
			Cooperative: true,
			Run: func(ctx context.Context) (core.Result, error) {
				return exact.FindPath(ctx, g)
			},
		})
		printOutcome(w, "backtracking", res, st, opts.verbose, true)
		exactStats = &st
	}
	if opts.algorithm != algBacktracking {
		res, st := perf.Measure(ctx, mon, perf.Task[core.Result]{
			Name:        "heuristic",
			Cooperative: true,
			Run: func(ctx context.Context) (core.Result, error) {
				return heuristic.FindPath(ctx, g, heuristic.WithSeed(opts.seed))
			},
		})
		printOutcome(w, "heuristic", res, st, opts.verbose, false)
		heurStats = &st
	}
	if exactStats != nil && heurStats != nil && exactStats.Success && heurStats.Success && heurStats.ElapsedSeconds > 0 {
		fmt.Fprintf(w, "speedup (bt/heur): %.2fx\n", exactStats.ElapsedSeconds/heurStats.ElapsedSeconds)
	}

	if opts.trace {
		if a.cfg.TimeoutSeconds > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(a.cfg.TimeoutSeconds)*time.Second)
			defer cancel()
		}
		return printTrace(ctx, w, g, opts.traceLimit)
	}

	return nil
}

func printOutcome(w io.Writer, name string, res core.Result, st perf.Stats, verbose, steps bool) {
	fmt.Fprintf(w, "[%s]\n", name)
	switch {
	case st.Timeout:
		fmt.Fprintf(w, "  result:  timeout after %.6f s (%s)\n", st.ElapsedSeconds, st.Cancellation)
	case !st.Success:
		fmt.Fprintf(w, "  result:  error: %s\n", st.Error)
	case res.Found:
		fmt.Fprintf(w, "  result:  found %v\n", res.Path)
	default:
		fmt.Fprintln(w, "  result:  no path found")
	}
	fmt.Fprintf(w, "  time:    %.6f s\n", st.ElapsedSeconds)
	if steps {
		fmt.Fprintf(w, "  steps:   %d\n", res.Steps)
	}
	fmt.Fprintf(w, "  memory:  %.4f MB peak\n", st.PeakMemoryMB)
	if verbose {
		fmt.Fprintf(w, "  rss:     %+.4f MB\n", st.MemoryDeltaMB)
		fmt.Fprintf(w, "  alloc:   %.4f MB\n", st.AllocatedMB)
	}
}

// printTrace replays the exact search event by event. limit ≤ 0 prints all.
// It stops with the wrapped ctx.Err() once ctx is done.
func printTrace(ctx context.Context, w io.Writer, g *core.Graph, limit int) error {
	tr, err := exact.NewTracer(g)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "trace:")
	i := 0
	for ev := range tr.Events() {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(w, "  ... stopped after %d events: %v\n", i, err)
			return fmt.Errorf("trace: %w", err)
		}
		if limit > 0 && i == limit {
			fmt.Fprintf(w, "  ... truncated after %d events\n", limit)
			break
		}
		fmt.Fprintf(w, "  %4d %-9s %v\n", i+1, ev.Kind, ev.Path)
		i++
	}

	return nil
}
