// SPDX-License-Identifier: MIT

package krylov

// Status is the lifecycle state of a Solver:
//
//	Uninitialized → Building → Converged | MaxIterReached → Extracted
type Status int

const (
	// Uninitialized: created, Run not called yet.
	Uninitialized Status = iota
	// Building: the recurrence is extending the Krylov subspace.
	Building
	// Converged: the tracked Ritz values settled, the recurrence broke down
	// on an invariant subspace, or the subspace spans the whole space.
	Converged
	// MaxIterReached: the iteration cap was hit first. Not an error.
	MaxIterReached
	// Extracted: Ritz vectors were assembled.
	Extracted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Building:
		return "building"
	case Converged:
		return "converged"
	case MaxIterReached:
		return "max-iter-reached"
	case Extracted:
		return "extracted"
	}

	return "unknown"
}

// Step reports one completed Lanczos step to the WithOnStep hook.
type Step struct {
	Iteration int       // subspace size after this step (1-based)
	Alpha     float64   // diagonal coefficient of this step
	Beta      float64   // residual norm after this step
	Ritz      []float64 // tracked Ritz values, nil on steps without a check
	Delta     float64   // largest change of Ritz since the previous check
	Status    Status
}
