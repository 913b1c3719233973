// SPDX-License-Identifier: MIT
package operator_test

import (
	"fmt"

	"github.com/katalvlaran/qbasis/operator"
)

// ExampleTimes builds the exchange term S+_0 S-_1 + S-_0 S+_1 of a two-site
// spin-1/2 chain.
func ExampleTimes() {
	sp := [][]complex128{{0, 1}, {0, 0}}
	sm := [][]complex128{{0, 0}, {1, 0}}

	sp0, _ := operator.NewDense(0, 0, false, sp)
	sm0, _ := operator.NewDense(0, 0, false, sm)
	sp1, _ := operator.NewDense(1, 0, false, sp)
	sm1, _ := operator.NewDense(1, 0, false, sm)

	a, _ := operator.Times(sp0, sm1)
	b, _ := operator.Times(sm0, sp1)
	h := operator.Plus(a, b).Scale(0.5)

	fmt.Println(h.Len())
	// Output: 2
}
