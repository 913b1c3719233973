// SPDX-License-Identifier: MIT

// Package operator - local (single site/orbital) operators.
//
// Purpose:
//   - Represent one operator acting on a single (site, orbital) slot as an owned
//     dim×dim matrix, or as its diagonal when only the diagonal is non-zero.
//   - Provide exact (up to rounding) arithmetic with strict operand checks.
//   - Carry the fermionic tag that the basis layer turns into Jordan–Wigner signs.
//
// Storage policy:
//   - Entries are owned by the value: every constructor and every arithmetic
//     result allocates fresh storage, so two Locals never alias.
//   - A nil entry slice is the additive identity (the zero operator); it is the
//     zero value of Local.
//
// AI-Hints:
//   - Call Simplify on dense operators that happen to be diagonal; application
//     and products take the cheaper diagonal path afterwards.
//   - Use Times (sum.go) for products across sites; Mul is same-slot only.

package operator

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Precision is the threshold used by every tolerance comparison on operator
// entries (equality, zero detection, sparse drop tolerance downstream).
const Precision = 1e-12

// Local is an operator acting on one (site, orbital) slot.
type Local struct {
	site     int          // site index
	orbital  int          // orbital index within the site
	dim      int          // rows (== cols) of the local matrix
	fermion  bool         // anticommutes with other fermionic operators
	diagonal bool         // mat holds only the dim diagonal entries
	mat      []complex128 // row-major dim*dim, or dim when diagonal; nil == zero operator
}

// NewDiagonal builds a diagonal operator from its diagonal entries.
// Returns ErrDimension for empty input or negative site/orbital.
func NewDiagonal(site, orbital int, fermion bool, diag []complex128) (Local, error) {
	if len(diag) == 0 || site < 0 || orbital < 0 {
		return Local{}, opErrorf(opNewDiagonal, ErrDimension)
	}
	mat := make([]complex128, len(diag))
	copy(mat, diag)

	return Local{site: site, orbital: orbital, dim: len(diag), fermion: fermion, diagonal: true, mat: mat}, nil
}

// NewDense builds an operator from a full square matrix given row by row.
// Returns ErrDimension if m is empty or not square, or site/orbital is negative.
// Complexity: O(dim²).
func NewDense(site, orbital int, fermion bool, m [][]complex128) (Local, error) {
	n := len(m)
	if n == 0 || site < 0 || orbital < 0 {
		return Local{}, opErrorf(opNewDense, ErrDimension)
	}
	mat := make([]complex128, n*n)
	for i, row := range m {
		if len(row) != n {
			return Local{}, opErrorf(opNewDense, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrDimension))
		}
		copy(mat[i*n:(i+1)*n], row)
	}

	return Local{site: site, orbital: orbital, dim: n, fermion: fermion, mat: mat}, nil
}

// Site returns the site index.
func (o Local) Site() int { return o.site }

// Orbital returns the orbital index.
func (o Local) Orbital() int { return o.orbital }

// Dim returns the local matrix dimension (0 for the zero operator).
func (o Local) Dim() int { return o.dim }

// IsFermionic reports whether the operator carries the fermionic tag.
func (o Local) IsFermionic() bool { return o.fermion }

// IsDiagonal reports whether the operator is stored as a diagonal.
func (o Local) IsDiagonal() bool { return o.diagonal }

// IsZero reports whether o is the zero operator within Precision.
func (o Local) IsZero() bool { return o.mat == nil || o.Norm() < Precision }

// At returns entry (i, j). Off-diagonal entries of a diagonal operator are 0.
// Returns ErrDimension for indices outside [0, dim).
func (o Local) At(i, j int) (complex128, error) {
	if i < 0 || j < 0 || i >= o.dim || j >= o.dim {
		return 0, fmt.Errorf("Local.At(%d,%d): %w", i, j, ErrDimension)
	}
	if o.diagonal {
		if i != j {
			return 0, nil
		}
		return o.mat[i], nil
	}

	return o.mat[i*o.dim+j], nil
}

// EachInColumn calls fn(row, value) for every non-zero entry of column col,
// in increasing row order. This is the hot path of operator application:
// acting on local state col yields sum_row value·|row>.
func (o Local) EachInColumn(col int, fn func(row int, v complex128)) {
	if o.mat == nil || col < 0 || col >= o.dim {
		return
	}
	if o.diagonal {
		if v := o.mat[col]; v != 0 {
			fn(col, v)
		}
		return
	}
	for i := 0; i < o.dim; i++ {
		if v := o.mat[i*o.dim+col]; v != 0 {
			fn(i, v)
		}
	}
}

// Clone returns a deep copy of o.
func (o Local) Clone() Local {
	if o.mat != nil {
		mat := make([]complex128, len(o.mat))
		copy(mat, o.mat)
		o.mat = mat
	}

	return o
}

// Norm returns sqrt(sum |entry|²).
// Complexity: O(len(entries)).
func (o Local) Norm() float64 {
	var acc float64
	for _, v := range o.mat {
		acc += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(acc)
}

// Negate flips the sign of every entry in place.
func (o *Local) Negate() *Local {
	for i := range o.mat {
		o.mat[i] = -o.mat[i]
	}

	return o
}

// Simplify switches a dense operator whose off-diagonal entries are all below
// Precision to diagonal storage, in place.
func (o *Local) Simplify() *Local {
	if o.mat == nil || o.diagonal {
		return o
	}
	n := o.dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && cmplx.Abs(o.mat[i*n+j]) >= Precision {
				return o
			}
		}
	}
	diag := make([]complex128, n)
	for i := 0; i < n; i++ {
		diag[i] = o.mat[i*n+i]
	}
	o.mat, o.diagonal = diag, true

	return o
}

// Dagger returns the adjoint (conjugate transpose) of o.
func (o Local) Dagger() Local {
	out := o.Clone()
	if out.mat == nil {
		return out
	}
	if out.diagonal {
		for i, v := range out.mat {
			out.mat[i] = cmplx.Conj(v)
		}
		return out
	}
	n := o.dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.mat[j*n+i] = cmplx.Conj(o.mat[i*n+j])
		}
	}

	return out
}

// dense returns the entries as a fresh row-major dim×dim slice.
func (o Local) dense() []complex128 {
	n := o.dim
	out := make([]complex128, n*n)
	if o.diagonal {
		for i, v := range o.mat {
			out[i*n+i] = v
		}
		return out
	}
	copy(out, o.mat)

	return out
}

// sameSlot reports whether a and b act on the same site and orbital.
func sameSlot(a, b Local) bool { return a.site == b.site && a.orbital == b.orbital }

// compatible checks the operand contract of Add/Sub.
func compatible(a, b Local) error {
	switch {
	case !sameSlot(a, b):
		return fmt.Errorf("slots (%d,%d) vs (%d,%d): %w", a.site, a.orbital, b.site, b.orbital, ErrIncompatibleOperand)
	case a.dim != b.dim:
		return fmt.Errorf("dims %d vs %d: %w", a.dim, b.dim, ErrIncompatibleOperand)
	case a.fermion != b.fermion:
		return fmt.Errorf("fermionic tag mismatch: %w", ErrIncompatibleOperand)
	}

	return nil
}

// addSub computes a + sign*b; the zero operator is the identity element.
func addSub(a, b Local, sign complex128, tag string) (Local, error) {
	if b.mat == nil {
		return a.Clone(), nil
	}
	if a.mat == nil {
		return Scale(sign, b), nil
	}
	if err := compatible(a, b); err != nil {
		return Local{}, opErrorf(tag, err)
	}
	out := Local{site: a.site, orbital: a.orbital, dim: a.dim, fermion: a.fermion}
	if a.diagonal && b.diagonal {
		out.diagonal = true
		out.mat = make([]complex128, a.dim)
		for i := range out.mat {
			out.mat[i] = a.mat[i] + sign*b.mat[i]
		}
		return out, nil
	}
	out.mat = a.dense()
	bd := b.dense()
	for i := range out.mat {
		out.mat[i] += sign * bd[i]
	}

	return out, nil
}

// Add returns a + b. Operands must share site, orbital, dim and fermionic tag.
// Errors: ErrIncompatibleOperand.
func Add(a, b Local) (Local, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b. Same contract as Add.
func Sub(a, b Local) (Local, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b of two operators on the same slot.
// The fermionic tag of the product is a.fermion XOR b.fermion (parity).
// Errors: ErrIncompatibleOperand for different slots or dimensions.
// Complexity: O(dim) for diagonal×diagonal, O(dim²) mixed, O(dim³) dense×dense.
func Mul(a, b Local) (Local, error) {
	if a.mat == nil || b.mat == nil {
		return Local{}, nil
	}
	if !sameSlot(a, b) || a.dim != b.dim {
		return Local{}, opErrorf(opMul, fmt.Errorf("(%d,%d,dim %d) x (%d,%d,dim %d): %w",
			a.site, a.orbital, a.dim, b.site, b.orbital, b.dim, ErrIncompatibleOperand))
	}
	n := a.dim
	out := Local{site: a.site, orbital: a.orbital, dim: n, fermion: a.fermion != b.fermion}
	switch {
	case a.diagonal && b.diagonal:
		out.diagonal = true
		out.mat = make([]complex128, n)
		for i := range out.mat {
			out.mat[i] = a.mat[i] * b.mat[i]
		}
	case a.diagonal:
		out.mat = b.dense()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out.mat[i*n+j] *= a.mat[i]
			}
		}
	case b.diagonal:
		out.mat = a.dense()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out.mat[i*n+j] *= b.mat[j]
			}
		}
	default:
		out.mat = make([]complex128, n*n)
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				aik := a.mat[i*n+k]
				if aik == 0 {
					continue
				}
				for j := 0; j < n; j++ {
					out.mat[i*n+j] += aik * b.mat[k*n+j]
				}
			}
		}
	}

	return out, nil
}

// Scale returns c·a.
func Scale(c complex128, a Local) Local {
	out := a.Clone()
	for i := range out.mat {
		out.mat[i] *= c
	}

	return out
}

// Normalize returns a scaled copy of a with sum |entry|² == dim (as a dense
// matrix would count it) together with the applied factor. The zero
// operator is returned unchanged with factor 0.
func Normalize(a Local) (Local, float64) {
	norm := a.Norm()
	if a.mat == nil || norm < Precision {
		return a.Clone(), 0
	}
	factor := math.Sqrt(float64(a.dim)) / norm

	return Scale(complex(factor, 0), a), factor
}

// Equal reports whether a and b are the same operator within Precision.
// A zero operator equals any operator whose norm is below Precision.
func Equal(a, b Local) bool {
	if a.mat == nil || b.mat == nil {
		return a.IsZero() && b.IsZero()
	}
	if compatible(a, b) != nil {
		return false
	}
	ad, bd := a.dense(), b.dense()
	for i := range ad {
		if cmplx.Abs(ad[i]-bd[i]) >= Precision {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (o Local) String() string {
	if o.mat == nil {
		return "Local{zero}"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Local{site=%d orbital=%d dim=%d fermion=%t diagonal=%t}\n", o.site, o.orbital, o.dim, o.fermion, o.diagonal)
	d := o.dense()
	for i := 0; i < o.dim; i++ {
		sb.WriteString("[")
		for j := 0; j < o.dim; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d[i*o.dim+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
