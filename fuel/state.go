// SPDX-License-Identifier: MIT

// Package fuel - the concentration state and its append-only history.

package fuel

import (
	"fmt"

	"sableye/isotope"
)

// State is one material inventory under simulation. Not safe for
// concurrent mutation; callers sharing a State across goroutines must
// serialize access externally.
type State struct {
	isotopes []isotope.Code // label order, fixed at construction
	current  []float64      // latest concentration vector, len == N
	history  [][]float64    // all vectors ever held, index 0 = initial
}

// New constructs a State over the given isotope order, seeded with the
// initial concentration vector (copied; history index 0).
//
// Errors: ErrInvalidState on an empty or duplicated isotope list or an
// initial vector whose length differs from the isotope count.
func New(isotopes []isotope.Code, initial []float64) (*State, error) {
	if len(isotopes) == 0 {
		return nil, fmt.Errorf("empty isotope list: %w", ErrInvalidState)
	}
	seen := make(map[isotope.Code]bool, len(isotopes))
	for _, code := range isotopes {
		if seen[code] {
			return nil, fmt.Errorf("duplicate isotope %s: %w", code, ErrInvalidState)
		}
		seen[code] = true
	}
	if len(initial) != len(isotopes) {
		return nil, fmt.Errorf("initial vector length %d != %d isotopes: %w",
			len(initial), len(isotopes), ErrInvalidState)
	}

	labels := make([]isotope.Code, len(isotopes))
	copy(labels, isotopes)
	first := make([]float64, len(initial))
	copy(first, initial)

	return &State{
		isotopes: labels,
		current:  first,
		history:  [][]float64{first},
	}, nil
}

// Size returns N, the isotope count.
func (s *State) Size() int { return len(s.isotopes) }

// Steps returns the number of history rows, including the initial one.
func (s *State) Steps() int { return len(s.history) }

// Isotopes returns a copy of the label order.
func (s *State) Isotopes() []isotope.Code {
	out := make([]isotope.Code, len(s.isotopes))
	copy(out, s.isotopes)

	return out
}

// Current returns a copy of the latest concentration vector.
func (s *State) Current() []float64 {
	out := make([]float64, len(s.current))
	copy(out, s.current)

	return out
}

// Append validates v's length, replaces current and adds one history
// row. The vector is copied; the caller's slice stays independent.
//
// Errors: ErrLengthMismatch, in which case history and current are left
// exactly as they were.
func (s *State) Append(v []float64) error {
	if len(v) != len(s.isotopes) {
		return fmt.Errorf("got %d, want %d: %w", len(v), len(s.isotopes), ErrLengthMismatch)
	}

	row := make([]float64, len(v))
	copy(row, v)
	s.current = row
	s.history = append(s.history, row)

	return nil
}

// History returns the full state sequence as a fresh steps×isotopes
// table: rows are time steps (row 0 = initial), columns follow the
// isotope order. Mutating the result never affects the State.
func (s *State) History() [][]float64 {
	out := make([][]float64, len(s.history))
	for i, row := range s.history {
		cp := make([]float64, len(row))
		copy(cp, row)
		out[i] = cp
	}

	return out
}
