package main

import (
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Sweep every size and density combination",
		Long: `Runs one configuration per (size, density) pair, sizes outer and densities
inner, and prints the summary table. Interrupting the sweep keeps the
configurations already completed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := runOverrides(cmd)
			if cmd.Flags().Changed("sizes") {
				overrides["sizes"], _ = cmd.Flags().GetIntSlice("sizes")
			}
			if cmd.Flags().Changed("densities") {
				overrides["densities"], _ = cmd.Flags().GetStringSlice("densities")
			}
			if err := a.merge(overrides); err != nil {
				return err
			}

			s, err := a.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			_, runErr := s.runner.RunBatch(cmd.Context(), a.cfg.Sizes, a.cfg.Densities, a.cfg.Repetitions)
			if len(s.runner.Batches()) == 0 {
				return runErr
			}
			if err := a.report(cmd.Context(), cmd.OutOrStdout(), s); err != nil {
				return err
			}

			return runErr
		},
	}
	addRunFlags(cmd)
	cmd.Flags().IntSlice("sizes", nil, "Graph sizes, e.g. 10,20,30 (default: config value)")
	cmd.Flags().StringSlice("densities", nil, "Density labels, e.g. sparse,dense (default: config value)")

	return cmd
}
