// SPDX-License-Identifier: MIT

// Command qbasis diagonalizes lattice Hamiltonians sector by sector.
//
//	qbasis run    --config config/heisenberg.yaml
//	qbasis bounds --config config/hubbard.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
