// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qbasis/internal/config"
	"github.com/katalvlaran/qbasis/internal/logger"
	"github.com/katalvlaran/qbasis/internal/metrics"
	"github.com/katalvlaran/qbasis/krylov"
	"github.com/katalvlaran/qbasis/model"
	"github.com/katalvlaran/qbasis/presets"
)

// app is the state shared by every subcommand.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	metrics *metrics.Collectors
	reg     *prometheus.Registry
	sys     *presets.System
}

func newRootCmd() *cobra.Command {
	var cfgPath, level string
	root := &cobra.Command{
		Use:          "qbasis",
		Short:        "Symmetry-resolved exact diagonalization",
		Long:         "qbasis builds a lattice Hamiltonian from a YAML description and diagonalizes every momentum sector.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config/heisenberg.yaml", "path to the YAML run description")
	root.PersistentFlags().StringVar(&level, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(&cfgPath, &level), newBoundsCmd(&cfgPath, &level))

	return root
}

// setup loads the configuration and builds the logger, metrics and model.
func setup(cfgPath, level string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if level == "" {
		level = cfg.Logging.Level
	}
	log, err := logger.NewLogger(cfg.Env, level)
	if err != nil {
		return nil, err
	}

	col := metrics.New()
	reg := prometheus.NewRegistry()
	if err = col.Register(reg); err != nil {
		return nil, err
	}

	lat, err := cfg.BuildLattice()
	if err != nil {
		return nil, fmt.Errorf("lattice: %w", err)
	}
	var sys *presets.System
	switch cfg.Model.Name {
	case config.ModelHeisenberg:
		sys, err = presets.Heisenberg(lat, cfg.Model.J, model.WithLogger(log))
	case config.ModelHubbard:
		sys, err = presets.Hubbard(lat, cfg.Model.T, cfg.Model.U, model.WithLogger(log))
	}
	if err != nil {
		return nil, err
	}
	sys.MatrixFree = cfg.Solver.MatrixFree
	log.Info("configured",
		zap.String("model", sys.Name),
		zap.Stringer("lattice", lat),
		zap.Float64s("targets", cfg.Model.Targets))

	return &app{cfg: cfg, log: log, metrics: col, reg: reg, sys: sys}, nil
}

// solverOptions maps the solver section to Lanczos options.
func (a *app) solverOptions() ([]krylov.Option, error) {
	tri, err := a.cfg.TridiagSolver()
	if err != nil {
		return nil, err
	}
	opts := []krylov.Option{
		krylov.WithNEV(a.cfg.Solver.NEV),
		krylov.WithMaxIter(a.cfg.Solver.MaxIter),
		krylov.WithTol(a.cfg.Solver.Tol),
		krylov.WithSeed(a.cfg.Solver.Seed),
		krylov.WithSolver(tri),
		krylov.WithOnStep(a.metrics.OnStep(a.sys.Name)),
	}
	if r := a.cfg.Solver.ReorthEvery; r != nil {
		opts = append(opts, krylov.WithReorthEvery(*r))
	}

	return opts, nil
}

// finish records the enumeration time, flushes the logger and exports
// metrics when configured. Per-sector stages are observed by the commands.
func (a *app) finish() error {
	defer func() { _ = a.log.Sync() }()
	a.metrics.ObserveTimings(model.Timings{Enumerate: a.sys.Model.Timings().Enumerate})
	if a.cfg.Metrics.File == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.Metrics.File, a.reg); err != nil {
		return err
	}
	a.log.Info("metrics written", zap.String("file", a.cfg.Metrics.File))

	return nil
}
