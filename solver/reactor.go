// SPDX-License-Identifier: MIT

// Package solver - continuous time evolution.

package solver

import (
	"errors"
	"fmt"

	"sableye/fuel"
	"sableye/matrix"
)

// Reactor advances fuel states under one fixed generator. The matrix is
// deep-copied at construction; a Reactor never observes later mutations
// of the caller's matrix and is safe for concurrent Evolve calls on
// distinct states.
type Reactor struct {
	q *matrix.Dense // the generator, N×N, immutable after construction
	n int
}

// NewReactor wraps a generator matrix.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
func NewReactor(q *matrix.Dense) (*Reactor, error) {
	if err := matrix.ValidateSquareNonNil(q); err != nil {
		return nil, fmt.Errorf("NewReactor: %w", err)
	}

	return &Reactor{q: q.Clone(), n: q.Rows()}, nil
}

// Size returns the generator dimension N.
func (r *Reactor) Size() int { return r.n }

// Matrix returns a deep copy of the wrapped generator, for persistence
// or inspection.
func (r *Reactor) Matrix() *matrix.Dense { return r.q.Clone() }

// Evolve advances st by dt seconds: computes the propagator exp(Q·dt),
// applies it to the current vector and appends the result to history.
//
// Behavior highlights:
//   - dt = 0 appends an exact copy of the current vector (identity
//     propagator, no numerical round trip).
//   - On matrix.ErrNumericalInstability the best-effort vector is still
//     appended and the error is returned as a warning; check with
//     errors.Is and decide whether to trust the tail of the history.
//   - Any other failure appends nothing.
//
// Errors: ErrNilState, ErrNegativeTime, ErrTypeMismatch,
// matrix.ErrNumericalInstability (state appended), matrix errors from
// the exponential (state not appended).
// Complexity: Time O(n³) through the exponential, Space O(n²).
func (r *Reactor) Evolve(st *fuel.State, dt float64) error {
	if st == nil {
		return fmt.Errorf("Evolve: %w", ErrNilState)
	}
	if dt < 0 {
		return fmt.Errorf("Evolve: dt=%g: %w", dt, ErrNegativeTime)
	}
	if st.Size() != r.n {
		return fmt.Errorf("Evolve: state size %d, generator %d: %w",
			st.Size(), r.n, ErrTypeMismatch)
	}

	if dt == 0 {
		return st.Append(st.Current())
	}

	scaled, err := matrix.Scale(r.q, dt)
	if err != nil {
		return fmt.Errorf("Evolve: %w", err)
	}
	propagator, expErr := matrix.Expm(scaled)
	if expErr != nil && !errors.Is(expErr, matrix.ErrNumericalInstability) {
		return fmt.Errorf("Evolve: %w", expErr)
	}

	next, err := matrix.MatVec(propagator, st.Current())
	if err != nil {
		return fmt.Errorf("Evolve: %w", err)
	}
	if err = st.Append(next); err != nil {
		return fmt.Errorf("Evolve: %w", err)
	}

	// Instability is a warning riding on a committed result.
	if expErr != nil {
		return fmt.Errorf("Evolve: %w", expErr)
	}

	return nil
}
