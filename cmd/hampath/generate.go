package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/experiment"
	"github.com/katalvlaran/hampath/graphio"
)

const shapeRandom = "random"

// shapes maps --shape values to deterministic constructors.
var shapes = map[string]func(n int) builder.Constructor{
	"empty":    builder.Empty,
	"path":     builder.Path,
	"cycle":    builder.Cycle,
	"star":     builder.Star,
	"wheel":    builder.Wheel,
	"complete": builder.Complete,
}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate N [DENSITY]",
		Short: "Generate a graph and write it in the text format",
		Long: `Samples G(N, p) with p taken from DENSITY (sparse, medium or dense), or
builds a fixed topology with --shape. Writes to stdout unless -o is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, _ := cmd.Flags().GetString("shape")
			out, _ := cmd.Flags().GetString("output")
			seed, _ := cmd.Flags().GetInt64("seed")

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N must be an integer: %w", err)
			}

			var cons builder.Constructor
			if shape == shapeRandom {
				if len(args) < 2 {
					return fmt.Errorf("DENSITY is required for random graphs")
				}
				p, err := experiment.Probability(args[1])
				if err != nil {
					return err
				}
				cons = builder.Random(n, p)
			} else {
				mk, ok := shapes[shape]
				if !ok {
					return fmt.Errorf("unknown shape %q", shape)
				}
				cons = mk(n)
			}

			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons)
			if err != nil {
				return err
			}

			if out == "" {
				return graphio.Write(cmd.OutOrStdout(), g)
			}
			if err := graphio.WriteFile(out, g); err != nil {
				return err
			}
			a.log.Info("graph written", zap.String("path", out), zap.Int("n", g.Order()), zap.Int("m", g.Size()))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	cmd.Flags().String("shape", shapeRandom, "random, empty, path, cycle, star, wheel or complete")
	cmd.Flags().Int64("seed", 1, "Sampler seed")

	return cmd
}
