package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hampath/internal/config"
	"github.com/katalvlaran/hampath/internal/logging"
)

// app carries the state resolved before any subcommand runs.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hampath",
		Short: "Hamiltonian path experiments: exact backtracking vs. greedy heuristic",
		Long: `hampath samples random graphs, searches them for Hamiltonian paths with an
exhaustive backtracking search and a minimum-degree greedy heuristic, and
reports timing, memory and success rates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().String("config", "", "Configuration file (.yaml, .yml or .json)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newAnalyzeCmd(a),
		newGenerateCmd(a),
		newExperimentCmd(a),
		newBatchCmd(a),
	)

	return root
}

// setup layers defaults, the config file, HAMPATH_* variables and the
// --log-level flag, then builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.cfg, a.log = cfg, log

	return nil
}

// merge applies flag overrides and re-validates.
func (a *app) merge(values map[string]any) error {
	if err := a.cfg.Merge(values); err != nil {
		return err
	}

	return a.cfg.Validate()
}
