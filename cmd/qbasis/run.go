// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qbasis/presets"
)

func newRunCmd(cfgPath, level *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Find the lowest eigenvalues of every momentum sector",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(*cfgPath, *level)
			if err != nil {
				return err
			}
			opts, err := a.solverOptions()
			if err != nil {
				return err
			}
			if err = a.sys.Enumerate(a.cfg.Model.Targets...); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s on %s, full dimension %d\n",
				a.sys.Name, a.sys.Lattice, a.sys.Model.Basis().Len())
			_, err = a.sys.Sweep(func(r presets.SectorResult) {
				a.metrics.ObserveSector(a.sys.Name, r)
				fmt.Fprintf(out, "k=%v dim=%d nnz=%d iters=%d status=%s E=%.10f\n",
					r.Momentum, r.Dim, r.NNZ, r.Iterations, r.Status, r.Energies)
			}, opts...)
			if err != nil {
				return err
			}

			return a.finish()
		},
	}
}
