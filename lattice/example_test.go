// SPDX-License-Identifier: MIT
package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/qbasis/lattice"
)

// ExampleLattice_Coor2Site shows periodic wrapping on a 4x2 triangular lattice.
func ExampleLattice_Coor2Site() {
	lat, _ := lattice.New(lattice.Triangular, []int{4, 2}, []lattice.Boundary{lattice.Periodic, lattice.Periodic})
	a, _ := lat.Coor2Site([]int{3, 1}, 0)
	b, _ := lat.Coor2Site([]int{-1, 3}, 0)
	fmt.Println(lat.TotalSites(), a, b, len(lat.NearestNeighbors()))
	// Output: 8 7 7 24
}
