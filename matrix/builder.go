// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/cmplx"

	"github.com/tidwall/btree"
)

// Builder accumulates (row, col, value) triplets in an ordered map and emits
// a CSR. Repeated coordinates are summed. Not safe for concurrent use.
type Builder struct {
	n    int
	acc  *btree.Map[uint64, complex128] // key = row<<32 | col
	opts Options
}

// NewBuilder returns an empty builder for an n×n matrix.
// Errors: ErrBadShape for n <= 0 or n >= 2³².
func NewBuilder(n int, opts ...Option) (*Builder, error) {
	if n <= 0 || uint64(n) >= 1<<32 {
		return nil, matrixErrorf(opNewBuilder, ErrBadShape)
	}

	return &Builder{n: n, acc: btree.NewMap[uint64, complex128](0), opts: gatherOptions(opts...)}, nil
}

// Add accumulates v into entry (i, j). Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(log k), k = distinct coordinates so far.
func (b *Builder) Add(i, j int, v complex128) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return matrixErrorf(opBuilderAdd, fmt.Errorf("(%d,%d) in %d×%d: %w", i, j, b.n, b.n, ErrOutOfRange))
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return matrixErrorf(opBuilderAdd, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
	}
	key := uint64(i)<<32 | uint64(j)
	if old, ok := b.acc.Get(key); ok {
		v += old
	}
	b.acc.Set(key, v)

	return nil
}

// Len returns the number of distinct coordinates accumulated so far.
func (b *Builder) Len() int { return b.acc.Len() }

// Build emits the CSR, dropping entries with magnitude below the builder's
// epsilon. The builder stays usable.
// Complexity: O(k).
func (b *Builder) Build() *CSR {
	m := &CSR{
		n:      b.n,
		rowPtr: make([]int, b.n+1),
		colIdx: make([]int, 0, b.acc.Len()),
		vals:   make([]complex128, 0, b.acc.Len()),
	}
	eps := b.opts.eps
	b.acc.Scan(func(key uint64, v complex128) bool {
		if cmplx.Abs(v) < eps {
			return true
		}
		i := int(key >> 32)
		m.rowPtr[i+1]++
		m.colIdx = append(m.colIdx, int(key&(1<<32-1)))
		m.vals = append(m.vals, v)
		return true
	})
	for i := 0; i < b.n; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m
}
