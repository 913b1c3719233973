// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qbasis/matrix"
)

// sampleTridiag is a small tridiagonal with distinct eigenvalues.
var (
	sampleD = []float64{4, -1, 2.5, 0, 3}
	sampleE = []float64{1, 0.5, -2, 0.25}
)

// gonumEigen is the reference spectrum from gonum/mat.
func gonumEigen(t *testing.T, d, e []float64) []float64 {
	t.Helper()
	n := len(d)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, d[i])
		if i+1 < n {
			s.SetSym(i, i+1, e[i])
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(s, false))
	vals := es.Values(nil)
	sort.Float64s(vals)

	return vals
}

func TestTridiagEigen_Errors(t *testing.T) {
	_, _, err := matrix.TridiagEigen(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, _, err = matrix.TridiagEigen([]float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.TridiagEigen([]float64{1, math.NaN()}, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestTridiagEigen_MatchesGonum(t *testing.T) {
	want := gonumEigen(t, sampleD, sampleE)
	for _, solver := range []matrix.TridiagSolver{matrix.SolverLAPACK, matrix.SolverJacobi} {
		t.Run(solver.String(), func(t *testing.T) {
			vals, vecs, err := matrix.TridiagEigen(sampleD, sampleE, matrix.WithSolver(solver))
			require.NoError(t, err)
			assert.Nil(t, vecs)
			require.Len(t, vals, len(want))
			assert.InDeltaSlice(t, want, vals, 1e-10)
			assert.True(t, sort.Float64sAreSorted(vals), "ascending order")
		})
	}
}

func TestTridiagEigen_DoesNotModifyInput(t *testing.T) {
	d := append([]float64(nil), sampleD...)
	e := append([]float64(nil), sampleE...)
	_, _, err := matrix.TridiagEigen(d, e, matrix.WithEigenvectors())
	require.NoError(t, err)
	assert.Equal(t, sampleD, d)
	assert.Equal(t, sampleE, e)
}

func TestTridiagEigen_EigenvectorResidual(t *testing.T) {
	tm, err := matrix.NewSymTridiag(sampleD, sampleE)
	require.NoError(t, err)
	n := len(sampleD)
	for _, solver := range []matrix.TridiagSolver{matrix.SolverLAPACK, matrix.SolverJacobi} {
		t.Run(solver.String(), func(t *testing.T) {
			vals, vecs, err := matrix.TridiagEigen(sampleD, sampleE,
				matrix.WithSolver(solver), matrix.WithEigenvectors())
			require.NoError(t, err)
			require.NotNil(t, vecs)
			for k := 0; k < n; k++ {
				v, err := vecs.Col(k)
				require.NoError(t, err)
				var norm float64
				for i := 0; i < n; i++ {
					var tv float64
					for j := 0; j < n; j++ {
						a, _ := tm.At(i, j)
						tv += a * v[j]
					}
					assert.InDelta(t, vals[k]*v[i], tv, 1e-10, "T·v = λ·v at k=%d row %d", k, i)
					norm += v[i] * v[i]
				}
				assert.InDelta(t, 1.0, norm, 1e-10)
			}
		})
	}
}

func TestTridiagEigen_OneByOne(t *testing.T) {
	vals, vecs, err := matrix.TridiagEigen([]float64{-2.5}, nil, matrix.WithEigenvectors())
	require.NoError(t, err)
	assert.Equal(t, []float64{-2.5}, vals)
	v, _ := vecs.At(0, 0)
	assert.InDelta(t, 1.0, math.Abs(v), 1e-15)
}

func TestEigen_Errors(t *testing.T) {
	_, _, err := matrix.Eigen(nil, 1e-12, 10)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = matrix.Eigen(rect, 1e-12, 10)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	asym, _ := matrix.NewDense(2, 2)
	require.NoError(t, asym.Set(0, 1, 1))
	_, _, err = matrix.Eigen(asym, 1e-12, 10)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	m, _ := matrix.NewSymTridiag(sampleD, sampleE)
	_, _, err = matrix.Eigen(m, 1e-14, 1)
	assert.ErrorIs(t, err, matrix.ErrEigenFailed, "one rotation cannot diagonalize a 5×5 tridiagonal")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	assert.Panics(t, func() { matrix.WithSolver(matrix.TridiagSolver(7)) })
	assert.Panics(t, func() { matrix.WithMaxRotations(0) })

	o := matrix.NewMatrixOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.SolverLAPACK, o.Solver())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(1e-6), matrix.WithSolver(matrix.SolverJacobi))
	assert.Equal(t, 1e-6, o.Epsilon())
	assert.Equal(t, "jacobi", o.Solver().String())
}
