// SPDX-License-Identifier: MIT

// Package solver - instantaneous reprocessing transforms.

package solver

import (
	"fmt"

	"sableye/fuel"
	"sableye/matrix"
)

// Scheme is a reusable affine remap of a concentration vector:
// new = add + mult·current, optionally renormalized to unit sum.
// Stateless after construction; one Scheme may serve many states.
type Scheme struct {
	add         []float64
	mult        *matrix.Dense
	renormalize bool
}

// NewScheme validates and copies the transform. mult must be square and
// add must match its dimension.
//
// Errors: ErrInvalidScheme wrapping the shape violation.
func NewScheme(add []float64, mult *matrix.Dense, renormalize bool) (*Scheme, error) {
	if err := matrix.ValidateSquareNonNil(mult); err != nil {
		return nil, fmt.Errorf("NewScheme: %v: %w", err, ErrInvalidScheme)
	}
	if err := matrix.ValidateVecLen(add, mult.Rows()); err != nil {
		return nil, fmt.Errorf("NewScheme: %v: %w", err, ErrInvalidScheme)
	}

	addCopy := make([]float64, len(add))
	copy(addCopy, add)

	return &Scheme{add: addCopy, mult: mult.Clone(), renormalize: renormalize}, nil
}

// NewIdentityScheme returns the n-dimensional no-op scheme: zero add,
// identity mult, no renormalization. Handy as a template the caller
// mutates before construction, and in tests.
func NewIdentityScheme(n int) (*Scheme, error) {
	id, err := matrix.Identity(n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentityScheme: %v: %w", err, ErrInvalidScheme)
	}

	return &Scheme{add: make([]float64, n), mult: id}, nil
}

// Size returns the scheme dimension N.
func (s *Scheme) Size() int { return len(s.add) }

// Apply computes new = add + mult·current, renormalizes when the scheme
// asks for it, and appends the result to st's history. Instantaneous:
// no simulated time elapses.
//
// Errors: ErrNilState, ErrTypeMismatch, ErrDegenerateState when
// renormalizing a zero-sum result (nothing appended).
// Complexity: Time O(n²), Space O(n).
func (s *Scheme) Apply(st *fuel.State) error {
	if st == nil {
		return fmt.Errorf("Apply: %w", ErrNilState)
	}
	if st.Size() != s.Size() {
		return fmt.Errorf("Apply: state size %d, scheme %d: %w",
			st.Size(), s.Size(), ErrTypeMismatch)
	}

	next, err := matrix.MatVec(s.mult, st.Current())
	if err != nil {
		return fmt.Errorf("Apply: %w", err)
	}
	for i := range next {
		next[i] += s.add[i]
	}

	if s.renormalize {
		var sum float64
		for _, v := range next {
			sum += v
		}
		if sum == 0 {
			return fmt.Errorf("Apply: %w", ErrDegenerateState)
		}
		for i := range next {
			next[i] /= sum
		}
	}

	if err = st.Append(next); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}
