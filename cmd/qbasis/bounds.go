// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qbasis/krylov"
)

func newBoundsCmd(cfgPath, level *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Estimate the spectral range of every momentum sector",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(*cfgPath, *level)
			if err != nil {
				return err
			}
			tri, err := a.cfg.TridiagSolver()
			if err != nil {
				return err
			}
			if err = a.sys.Enumerate(a.cfg.Model.Targets...); err != nil {
				return err
			}
			bounds, err := a.sys.SweepBounds(a.cfg.Bounds.Extend, a.cfg.Bounds.Iters,
				krylov.WithSeed(a.cfg.Solver.Seed), krylov.WithSolver(tri))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range bounds {
				a.metrics.ObserveBounds(a.sys.Name, b)
				fmt.Fprintf(out, "k=%v dim=%d lo=%.8f hi=%.8f\n", b.Momentum, b.Dim, b.Lo, b.Hi)
			}

			return a.finish()
		},
	}
}
