// SPDX-License-Identifier: MIT

// Package isotope - the Code value type and its shift arithmetic.
//
// Purpose:
//   - Replace fixed-width string slicing with a typed (A, Z, M) tuple.
//   - Keep the canonical ten-digit ZZZAAAMMMM form for interchange with
//     rate tables keyed by textual codes.
//   - Make every shift total: boundary metastable transitions saturate,
//     unphysical nucleon counts fail with a sentinel.

package isotope

import (
	"fmt"
	"strconv"
)

// Field widths of the canonical ZZZAAAMMMM code.
const (
	codeLen = 10 // total digits
	zWidth  = 3  // atomic number Z
	aWidth  = 3  // mass number A
	mWidth  = 4  // metastable ordinal M
)

// MaxMeta is the highest metastable ordinal the state machine models
// (ground = 0, first excited = 1, second excited = 2).
const MaxMeta = 2

// MetaShift selects a metastable-state transition for Shift.
type MetaShift int

const (
	// MetaNone leaves the metastable ordinal unchanged.
	MetaNone MetaShift = 0
	// MetaUp moves ground→m1 or m1→m2; saturates at m2.
	MetaUp MetaShift = 1
	// MetaDown moves m2→m1 or m1→ground; saturates at ground.
	MetaDown MetaShift = -1
)

// Code identifies a nuclide by mass number A, atomic number Z and
// metastable ordinal M. The zero value is not a valid nuclide (A must be
// at least 1); construct via New or Parse.
type Code struct {
	A int // mass number (protons + neutrons), ≥ 1
	Z int // atomic number (protons), ≥ 0
	M int // metastable ordinal, 0..MaxMeta
}

// New builds a Code from explicit fields, validating ranges.
//
// Inputs:
//   - a: mass number, 1..999.
//   - z: atomic number, 0..999 and ≤ a.
//   - m: metastable ordinal, 0..MaxMeta.
//
// Returns the Code or ErrBadCode.
// Complexity: O(1).
func New(a, z, m int) (Code, error) {
	if a < 1 || a > 999 || z < 0 || z > 999 || z > a || m < 0 || m > MaxMeta {
		return Code{}, fmt.Errorf("New(%d,%d,%d): %w", a, z, m, ErrBadCode)
	}

	return Code{A: a, Z: z, M: m}, nil
}

// Parse decodes a canonical ten-digit ZZZAAAMMMM code.
//
// Implementation:
//   - Stage 1: length and all-digit check.
//   - Stage 2: split fixed-width fields, convert, delegate to New.
//
// Errors: ErrBadCode on any malformed input.
// Complexity: O(1).
func Parse(s string) (Code, error) {
	if len(s) != codeLen {
		return Code{}, fmt.Errorf("Parse(%q): %w", s, ErrBadCode)
	}
	for i := 0; i < codeLen; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Code{}, fmt.Errorf("Parse(%q): %w", s, ErrBadCode)
		}
	}

	// Fixed-width fields; Atoi cannot fail after the digit scan.
	z, _ := strconv.Atoi(s[:zWidth])
	a, _ := strconv.Atoi(s[zWidth : zWidth+aWidth])
	m, _ := strconv.Atoi(s[zWidth+aWidth:])

	c, err := New(a, z, m)
	if err != nil {
		return Code{}, fmt.Errorf("Parse(%q): %w", s, ErrBadCode)
	}

	return c, nil
}

// MustParse is Parse that panics on malformed input. Intended for
// compile-time-known literals in catalogs and tests.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

// String renders the canonical ZZZAAAMMMM form.
// Complexity: O(1).
func (c Code) String() string {
	return fmt.Sprintf("%0*d%0*d%0*d", zWidth, c.Z, aWidth, c.A, mWidth, c.M)
}

// Shift applies a reaction-induced transform (ΔA, ΔZ, metastable
// transition) and returns the product nuclide.
//
// Behavior highlights:
//   - Metastable transitions follow the ground ⇄ m1 ⇄ m2 state machine;
//     MetaDown on ground and MetaUp on m2 saturate (no-op on M).
//   - A result with A < 1, Z < 0 or Z > A fails with ErrUnphysical; the
//     receiver is never mutated (value semantics).
//
// Determinism: pure function of (c, deltaA, deltaZ, dm).
// Complexity: O(1).
func (c Code) Shift(deltaA, deltaZ int, dm MetaShift) (Code, error) {
	a := c.A + deltaA
	z := c.Z + deltaZ
	if a < 1 || a > 999 || z < 0 || z > a {
		return Code{}, fmt.Errorf("Shift(%s,%+d,%+d): %w", c, deltaA, deltaZ, ErrUnphysical)
	}

	m := c.M
	switch dm {
	case MetaUp:
		if m < MaxMeta {
			m++
		}
	case MetaDown:
		if m > 0 {
			m--
		}
	case MetaNone:
		// unchanged
	}

	return Code{A: a, Z: z, M: m}, nil
}
