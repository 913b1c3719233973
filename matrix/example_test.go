// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/qbasis/matrix"
)

// ExampleTridiagEigen diagonalizes the 2×2 matrix [[0,1],[1,0]].
func ExampleTridiagEigen() {
	vals, _, err := matrix.TridiagEigen([]float64{0, 0}, []float64{1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f %.1f\n", vals[0], vals[1])
	// Output: -1.0 1.0
}

// ExampleBuilder accumulates a Pauli-X and multiplies it by a vector.
func ExampleBuilder() {
	b, _ := matrix.NewBuilder(2)
	_ = b.Add(0, 1, 1)
	_ = b.Add(1, 0, 1)
	m := b.Build()

	y := make([]complex128, 2)
	_ = m.MulVec([]complex128{1, 2i}, y)
	fmt.Println(m.NNZ(), y)
	// Output: 2 [(0+2i) (1+0i)]
}
