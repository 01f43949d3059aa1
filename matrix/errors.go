// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. Kernels return these sentinels and tests check them via
// errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the boundary; callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates a requested shape with rows <= 0 or
	// cols <= 0. Constructors validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Add with different shapes, Mul where a.Cols != b.Rows, a vector whose
	// length differs from the expected dimension, or a square-matrix
	// requirement violated.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is
	// required (Set under the numeric policy).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when elimination meets an exactly-zero pivot
	// column and no solve can proceed.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNumericalInstability marks a best-effort result whose precision
	// is degraded: near-singular Padé denominator or an extreme squaring
	// depth in Expm. The accompanying result is still returned; callers
	// decide whether to accept it.
	ErrNumericalInstability = errors.New("matrix: numerical instability detected")
)
