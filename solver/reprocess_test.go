// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sableye/fuel"
	"sableye/isotope"
	"sableye/matrix"
	"sableye/solver"
)

// TestNewScheme_Validation covers the shape guards.
func TestNewScheme_Validation(t *testing.T) {
	_, err := solver.NewScheme([]float64{0}, nil, false)
	assert.ErrorIs(t, err, solver.ErrInvalidScheme, "nil mult")

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = solver.NewScheme([]float64{0, 0}, rect, false)
	assert.ErrorIs(t, err, solver.ErrInvalidScheme, "non-square mult")

	id, err := matrix.Identity(2)
	require.NoError(t, err)
	_, err = solver.NewScheme([]float64{0}, id, false)
	assert.ErrorIs(t, err, solver.ErrInvalidScheme, "add length mismatch")
}

// TestScheme_NoOp verifies that zero add + identity mult + no
// renormalization leaves the vector unchanged while still appending.
func TestScheme_NoOp(t *testing.T) {
	scheme, err := solver.NewIdentityScheme(2)
	require.NoError(t, err)

	st, err := fuel.New([]isotope.Code{u238, th234}, []float64{0.4, 0.6})
	require.NoError(t, err)

	require.NoError(t, scheme.Apply(st))
	assert.Equal(t, []float64{0.4, 0.6}, st.Current())
	assert.Equal(t, 2, st.Steps(), "a no-op still records a history row")
}

// TestScheme_Affine verifies new = add + mult·current on hand-computed
// numbers.
func TestScheme_Affine(t *testing.T) {
	mult, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, mult.Set(0, 0, 0.5)) // keep half of isotope 0
	require.NoError(t, mult.Set(1, 1, 1.0)) // isotope 1 untouched

	scheme, err := solver.NewScheme([]float64{0.1, 0}, mult, false)
	require.NoError(t, err)

	st, err := fuel.New([]isotope.Code{u238, th234}, []float64{1, 0.3})
	require.NoError(t, err)
	require.NoError(t, scheme.Apply(st))

	cur := st.Current()
	assert.InDelta(t, 0.6, cur[0], 1e-15, "0.5·1 + 0.1")
	assert.InDelta(t, 0.3, cur[1], 1e-15)
}

// TestScheme_Renormalize verifies the unit-sum postcondition.
func TestScheme_Renormalize(t *testing.T) {
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	scheme, err := solver.NewScheme([]float64{1, 1}, id, true)
	require.NoError(t, err)

	st, err := fuel.New([]isotope.Code{u238, th234}, []float64{3, 1})
	require.NoError(t, err)
	require.NoError(t, scheme.Apply(st))

	cur := st.Current()
	assert.InDelta(t, 1.0, cur[0]+cur[1], 1e-12)
	assert.InDelta(t, 4.0/6.0, cur[0], 1e-12)
	assert.InDelta(t, 2.0/6.0, cur[1], 1e-12)
}

// TestScheme_DegenerateState verifies that renormalizing a zero-sum
// result fails and appends nothing.
func TestScheme_DegenerateState(t *testing.T) {
	zero, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	scheme, err := solver.NewScheme([]float64{0, 0}, zero, true)
	require.NoError(t, err)

	st, err := fuel.New([]isotope.Code{u238, th234}, []float64{1, 1})
	require.NoError(t, err)

	err = scheme.Apply(st)
	assert.ErrorIs(t, err, solver.ErrDegenerateState)
	assert.Equal(t, 1, st.Steps(), "failed apply must not grow history")
	assert.Equal(t, []float64{1, 1}, st.Current())
}

// TestScheme_Guards covers nil state and dimension mismatch.
func TestScheme_Guards(t *testing.T) {
	scheme, err := solver.NewIdentityScheme(2)
	require.NoError(t, err)

	assert.ErrorIs(t, scheme.Apply(nil), solver.ErrNilState)

	st, err := fuel.New([]isotope.Code{u238}, []float64{1})
	require.NoError(t, err)
	assert.ErrorIs(t, scheme.Apply(st), solver.ErrTypeMismatch)
	assert.Equal(t, 1, st.Steps())
}

// TestScheme_Reusable verifies statelessness: one scheme across two
// independent fuel states and repeated applications.
func TestScheme_Reusable(t *testing.T) {
	mult, err := matrix.Identity(1)
	require.NoError(t, err)
	require.NoError(t, mult.Set(0, 0, 0.5))
	scheme, err := solver.NewScheme([]float64{0}, mult, false)
	require.NoError(t, err)

	a, err := fuel.New([]isotope.Code{u238}, []float64{8})
	require.NoError(t, err)
	b, err := fuel.New([]isotope.Code{u238}, []float64{2})
	require.NoError(t, err)

	require.NoError(t, scheme.Apply(a))
	require.NoError(t, scheme.Apply(a))
	require.NoError(t, scheme.Apply(b))

	assert.Equal(t, []float64{2}, a.Current())
	assert.Equal(t, []float64{1}, b.Current())
}
