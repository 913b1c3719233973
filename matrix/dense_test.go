// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbasis/matrix"
)

func TestDense_Basics(t *testing.T) {
	_, err := matrix.NewDense(0, 1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	require.NoError(t, m.Set(1, 2, 5))
	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, m.Set(1, 2, -1))
	v, err := c.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "Clone is deep")

	col, err := c.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5}, col)
	_, err = c.Col(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 5]\n", c.String())
}

func TestNewSymTridiag(t *testing.T) {
	m, err := matrix.NewSymTridiag([]float64{1, 2, 3}, []float64{4, 5})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
	v, _ := m.At(2, 1)
	assert.Equal(t, 5.0, v)
	v, _ = m.At(0, 2)
	assert.Equal(t, 0.0, v)

	_, err = matrix.NewSymTridiag([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
