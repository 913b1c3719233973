// SPDX-License-Identifier: MIT

package presets

import (
	"errors"

	"github.com/katalvlaran/qbasis/basis"
	"github.com/katalvlaran/qbasis/lattice"
	"github.com/katalvlaran/qbasis/model"
	"github.com/katalvlaran/qbasis/operator"
)

// Local matrices. Spin-1/2 basis (↑, ↓); electron basis (0, ↑, ↓, ↑↓) with
// the ↑ creator acting before the ↓ creator.
var (
	spinZ     = []complex128{0.5, -0.5}
	spinPlus  = [][]complex128{{0, 1}, {0, 0}}
	spinMinus = [][]complex128{{0, 0}, {1, 0}}

	annihilateUp = [][]complex128{
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	annihilateDn = [][]complex128{
		{0, 0, 1, 0},
		{0, 0, 0, -1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
)

// Heisenberg builds the spin-1/2 nearest-neighbour Heisenberg model
//
//	H = J Σ_<ij> [ ½(S⁺_i S⁻_j + S⁻_i S⁺_j) + Sᶻ_i Sᶻ_j ]
//
// on lat. Conserved: total Sᶻ.
func Heisenberg(lat *lattice.Lattice, j float64, opts ...model.Option) (*System, error) {
	if lat == nil {
		return nil, presetErrorf("Heisenberg", ErrNilLattice)
	}
	m := model.New(opts...)
	var szTotal operator.Sum
	for i := 0; i < lat.TotalSites(); i++ {
		sz, err := operator.NewDiagonal(i, 0, false, spinZ)
		if err != nil {
			return nil, presetErrorf("Heisenberg", err)
		}
		szTotal.AddLocal(sz)
	}
	for _, b := range lat.NearestNeighbors() {
		diag, off, err := exchange(b, j)
		if err != nil {
			return nil, presetErrorf("Heisenberg", err)
		}
		m.AddOffDiagonal(off)
		m.AddDiagonal(diag)
	}

	return &System{
		Name:      "heisenberg",
		Model:     m,
		Lattice:   lat,
		Species:   []basis.Species{basis.SpinHalf},
		Conserved: []operator.Sum{szTotal},
	}, nil
}

// exchange returns the Ising and spin-flip parts of J·S_i·S_j.
func exchange(b lattice.Bond, j float64) (diag, off operator.Sum, err error) {
	szi, err1 := operator.NewDiagonal(b.I, 0, false, spinZ)
	szj, err2 := operator.NewDiagonal(b.J, 0, false, spinZ)
	spi, err3 := operator.NewDense(b.I, 0, false, spinPlus)
	spj, err4 := operator.NewDense(b.J, 0, false, spinPlus)
	if err = errors.Join(err1, err2, err3, err4); err != nil {
		return diag, off, err
	}
	smi, smj := spi.Dagger(), spj.Dagger()

	pm, err := operator.Times(spi, smj)
	if err != nil {
		return diag, off, err
	}
	mp, err := operator.Times(smi, spj)
	if err != nil {
		return diag, off, err
	}
	zz, err := operator.Times(szi, szj)
	if err != nil {
		return diag, off, err
	}

	return zz.Scale(complex(j, 0)), operator.Plus(pm, mp).Scale(complex(0.5*j, 0)), nil
}

// Hubbard builds the single-band Fermi–Hubbard model
//
//	H = −t Σ_<ij>,σ (c†_iσ c_jσ + c†_jσ c_iσ) + U Σ_i n_i↑ n_i↓
//
// on lat. Conserved: N↑ and N↓ (in that order).
func Hubbard(lat *lattice.Lattice, t, u float64, opts ...model.Option) (*System, error) {
	if lat == nil {
		return nil, presetErrorf("Hubbard", ErrNilLattice)
	}
	m := model.New(opts...)
	var nUp, nDn operator.Sum
	for i := 0; i < lat.TotalSites(); i++ {
		ci, err := electron(i)
		if err != nil {
			return nil, presetErrorf("Hubbard", err)
		}
		up, err := operator.Mul(ci[0].Dagger(), ci[0])
		if err != nil {
			return nil, presetErrorf("Hubbard", err)
		}
		dn, err := operator.Mul(ci[1].Dagger(), ci[1])
		if err != nil {
			return nil, presetErrorf("Hubbard", err)
		}
		double, err := operator.Mul(up, dn)
		if err != nil {
			return nil, presetErrorf("Hubbard", err)
		}
		m.AddDiagonal(operator.FromLocal(operator.Scale(complex(u, 0), *double.Simplify())))
		nUp.AddLocal(*up.Simplify())
		nDn.AddLocal(*dn.Simplify())
	}
	for _, b := range lat.NearestNeighbors() {
		ci, err := electron(b.I)
		if err != nil {
			return nil, presetErrorf("Hubbard", err)
		}
		cj, err := electron(b.J)
		if err != nil {
			return nil, presetErrorf("Hubbard", err)
		}
		for spin := range ci {
			for _, pair := range [][2]operator.Local{{ci[spin], cj[spin]}, {cj[spin], ci[spin]}} {
				hop, err := operator.Times(pair[0].Dagger(), pair[1])
				if err != nil {
					return nil, presetErrorf("Hubbard", err)
				}
				m.AddOffDiagonal(hop.Scale(complex(-t, 0)))
			}
		}
	}

	return &System{
		Name:      "hubbard",
		Model:     m,
		Lattice:   lat,
		Species:   []basis.Species{basis.Electron},
		Conserved: []operator.Sum{nUp, nDn},
	}, nil
}

// electron returns the (↑, ↓) annihilators on site i.
func electron(i int) ([2]operator.Local, error) {
	up, err := operator.NewDense(i, 0, true, annihilateUp)
	if err != nil {
		return [2]operator.Local{}, err
	}
	dn, err := operator.NewDense(i, 0, true, annihilateDn)
	if err != nil {
		return [2]operator.Local{}, err
	}

	return [2]operator.Local{up, dn}, nil
}

// isEmpty reports a sector without compatible states.
func isEmpty(err error) bool { return errors.Is(err, basis.ErrEmptyBasis) }
