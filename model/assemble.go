// SPDX-License-Identifier: MIT
// Package model - sector matrix elements.
//
// For a representative |r_j> of the sector and a translation-invariant
// Hamiltonian H = D + O (D diagonal in the occupation basis):
//
//	H_jj += <r_j|D|r_j>
//	O|r_j> = Σ h·|s>,  T_{g*}|s> = σ*·|r_i>  ⇒  H_ij += h·σ*·χ(g*)·√(N_i/N_j)
//
// A state s outside the full basis is a selection rule violation; a state in
// an incompatible orbit contributes nothing.

package model

import (
	"fmt"

	"github.com/katalvlaran/qbasis/basis"
	"github.com/katalvlaran/qbasis/matrix"
	"github.com/katalvlaran/qbasis/operator"
	"github.com/katalvlaran/qbasis/symmetry"
)

// generator produces the columns of the sector Hamiltonian.
type generator struct {
	sec    *symmetry.Sector
	layout *basis.Layout
	diag   operator.Sum // canonical
	off    operator.Sum // canonical
}

func newGenerator(diag, off operator.Sum, sec *symmetry.Sector) (*generator, error) {
	layout := sec.Full().Layout()
	cd, err := diag.Canonical()
	if err != nil {
		return nil, fmt.Errorf("diagonal: %w", err)
	}
	co, err := off.Canonical()
	if err != nil {
		return nil, fmt.Errorf("off-diagonal: %w", err)
	}
	if err = layout.Validate(cd); err != nil {
		return nil, fmt.Errorf("diagonal: %w", err)
	}
	if err = layout.Validate(co); err != nil {
		return nil, fmt.Errorf("off-diagonal: %w", err)
	}

	return &generator{sec: sec, layout: layout, diag: cd, off: co}, nil
}

// column calls emit(i, H_ij) for the contributions to column j. The same row
// may be emitted more than once; callers accumulate.
// Errors: basis.ErrSelectionRule.
func (g *generator) column(j int, emit func(i int, v complex128)) error {
	r := g.sec.Rep(j)
	if d := g.layout.ExpectSum(g.diag, r); d != 0 {
		emit(j, d)
	}
	var err error
	g.off.Each(func(_ int, p operator.Product) {
		if err != nil {
			return
		}
		for _, a := range g.layout.Apply(p, r) {
			link, lerr := g.sec.Lookup(a.State)
			if lerr != nil {
				err = fmt.Errorf("column %d: %w", j, lerr)
				return
			}
			if link.Rep < 0 {
				continue
			}
			emit(link.Rep, a.Coef*g.sec.Weight(link, j))
		}
	})

	return err
}

// Assemble builds the CSR Hamiltonian of diag + offdiag restricted to sec.
// Both sums are canonicalized first; entries below the builder epsilon
// (matrix.DefaultEpsilon unless overridden) are dropped.
//
// Errors: ErrNoSector (nil sec), operator.ErrDimension /
// operator.ErrIncompatibleOperand (terms not fitting the layout),
// basis.ErrSelectionRule.
// Complexity: O(D · Σ terms · fan-out · log D_full).
func Assemble(diag, offdiag operator.Sum, sec *symmetry.Sector, opts ...matrix.Option) (*matrix.CSR, error) {
	if sec == nil {
		return nil, modelErrorf(opAssemble, ErrNoSector)
	}
	g, err := newGenerator(diag, offdiag, sec)
	if err != nil {
		return nil, modelErrorf(opAssemble, err)
	}
	b, err := matrix.NewBuilder(sec.Dim(), opts...)
	if err != nil {
		return nil, modelErrorf(opAssemble, err)
	}
	var addErr error
	for j := 0; j < sec.Dim(); j++ {
		err = g.column(j, func(i int, v complex128) {
			if e := b.Add(i, j, v); e != nil && addErr == nil {
				addErr = e
			}
		})
		if err != nil {
			return nil, modelErrorf(opAssemble, err)
		}
		if addErr != nil {
			return nil, modelErrorf(opAssemble, addErr)
		}
	}

	return b.Build(), nil
}
