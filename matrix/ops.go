// SPDX-License-Identifier: MIT

// Package matrix - element-wise and multiplicative kernels on *Dense.
// All kernels validate fail-fast through the central validators, allocate
// exactly one result, never mutate their operands, and traverse in fixed
// deterministic order.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opScale  = "Scale"
	opMul    = "Mul"
	opMatVec = "MatVec"
	opExpm   = "Expm"
)

// opErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: single flat 0..n-1 loop.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}
	for idx := 0; idx < len(res.data); idx++ {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Inputs:
//   - m: non-nil matrix.
//   - alpha: scalar multiplier (finite; NaN/Inf propagate to the result
//     and will be caught by any subsequent Set-path write).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	for idx := 0; idx < len(res.data); idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimensions.
//   - Stage 2: i→k→j loop with row-major strides, skipping zero A[i,k]
//     (generators are sparse: most isotope pairs share no channel).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j order; one pass per row with flat indexing.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var (
		i, j, base int
		acc, xv    float64
	)
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications; x is sparse-ish
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// OneNorm returns the induced 1-norm of m: the maximum absolute column
// sum. This is the norm the Expm scaling decision is based on.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(c).
func OneNorm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, opErrorf("OneNorm", err)
	}

	colSums := make([]float64, m.c)
	var i, j, base int
	var v float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			v = m.data[base+j]
			if v < 0 {
				v = -v
			}
			colSums[j] += v
		}
	}

	max := 0.0
	for j = 0; j < m.c; j++ {
		if colSums[j] > max {
			max = colSums[j]
		}
	}

	return max, nil
}
