// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sableye/matrix"
)

// mustDense builds an r×c matrix from row-major values, failing the test
// on any constructor or write error.
func mustDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, vals[i*c+j]))
		}
	}
	return m
}

// assertAll compares every entry of got against the row-major expectation
// within delta.
func assertAll(t *testing.T, got *matrix.Dense, want []float64, delta float64) {
	t.Helper()
	got.Do(func(i, j int, v float64) bool {
		assert.InDelta(t, want[i*got.Cols()+j], v, delta, "entry (%d,%d)", i, j)
		return true
	})
}

// TestAdd_Values verifies element-wise addition and operand immutability.
func TestAdd_Values(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 2, []float64{10, 20, 30, 40})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assertAll(t, sum, []float64{11, 22, 33, 44}, 0)

	// Operands untouched.
	assertAll(t, a, []float64{1, 2, 3, 4}, 0)
	assertAll(t, b, []float64{10, 20, 30, 40}, 0)
}

// TestAdd_Errors covers nil operands and shape mismatch.
func TestAdd_Errors(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	_, err := matrix.Add(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale_Values verifies scalar multiplication including the zero and
// negative cases used when assembling Q·Δt.
func TestScale_Values(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, -2, 0, 4})

	got, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	assertAll(t, got, []float64{-0.5, 1, 0, -2}, 1e-15)

	_, err = matrix.Scale(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Known checks a hand-computed 2×3 × 3×2 product.
func TestMul_Known(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 2, got.Cols())
	assertAll(t, got, []float64{58, 64, 139, 154}, 1e-12)
}

// TestMul_IdentityNeutral verifies I·A == A·I == A.
func TestMul_IdentityNeutral(t *testing.T) {
	a := mustDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)

	assertAll(t, left, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0)
	assertAll(t, right, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0)
}

// TestMul_Incompatible verifies the inner-dimension guard.
func TestMul_Incompatible(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 2, 2, []float64{1, 2, 3, 4})

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVec_Known verifies y = m·x on a hand-computed example plus the
// guard paths.
func TestMatVec_Known(t *testing.T) {
	m := mustDense(t, 2, 3, []float64{1, 0, 2, -1, 3, 0})

	y, err := matrix.MatVec(m, []float64{2, 1, 0.5})
	require.NoError(t, err)
	require.Len(t, y, 2)
	assert.InDelta(t, 3.0, y[0], 1e-15)
	assert.InDelta(t, 1.0, y[1], 1e-15)

	_, err = matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestOneNorm verifies the maximum absolute column sum, including a
// negative-heavy column.
func TestOneNorm(t *testing.T) {
	m := mustDense(t, 2, 3, []float64{1, -5, 2, -3, 4, 0})

	norm, err := matrix.OneNorm(m)
	require.NoError(t, err)
	assert.Equal(t, 9.0, norm, "column 1 sums |−5|+|4| = 9")
}
