package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/experiment"
)

func newExperimentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment N DENSITY",
		Short: "Run repeated trials of one configuration",
		Long: `Samples REPETITIONS graphs G(N, p) for the DENSITY label, runs both searches
on each and prints a detailed analysis.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N must be an integer: %w", err)
			}
			if err := a.merge(runOverrides(cmd)); err != nil {
				return err
			}

			s, err := a.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			b, err := s.runner.RunConfiguration(cmd.Context(), n, args[1], a.cfg.Repetitions)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprint(w, experiment.Report(b))

			return a.report(cmd.Context(), w, s)
		},
	}
	addRunFlags(cmd)

	return cmd
}

// addRunFlags registers the flags shared by experiment and batch.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("repetitions", "r", 0, "Trials per configuration (default: config value)")
	cmd.Flags().StringP("output", "o", "", "CSV output file")
	cmd.Flags().Int64("seed", 0, "Root seed of the sampler and heuristic streams")
	cmd.Flags().Int("timeout", 0, "Per-search timeout in seconds, 0 disables (default: config value)")
	cmd.Flags().String("redis-addr", "", "Persist batches to this Redis server")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
}

// runOverrides collects the run flags the user set explicitly.
func runOverrides(cmd *cobra.Command) map[string]any {
	f := cmd.Flags()
	out := map[string]any{}
	if f.Changed("repetitions") {
		out["repetitions"], _ = f.GetInt("repetitions")
	}
	if f.Changed("output") {
		out["output"], _ = f.GetString("output")
	}
	if f.Changed("seed") {
		out["seed"], _ = f.GetInt64("seed")
	}
	if f.Changed("timeout") {
		out["timeout_seconds"], _ = f.GetInt("timeout")
	}
	if f.Changed("metrics-addr") {
		out["metrics_addr"], _ = f.GetString("metrics-addr")
	}
	if f.Changed("redis-addr") {
		addr, _ := f.GetString("redis-addr")
		out["redis"] = map[string]any{"addr": addr}
	}

	return out
}
