// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sableye/bateman"
	"sableye/fuel"
	"sableye/isotope"
	"sableye/matrix"
	"sableye/rates"
	"sableye/solver"
)

var (
	u238  = isotope.MustParse("0922380000")
	th234 = isotope.MustParse("0902340000")
	pa234 = isotope.MustParse("0912340000")
	u234  = isotope.MustParse("0922340000")
)

// decayReactor builds a decay-only reactor over the tracked set.
func decayReactor(t *testing.T, tracked []isotope.Code, table rates.DecayTable) *solver.Reactor {
	t.Helper()
	b, err := bateman.NewBuilder(tracked)
	require.NoError(t, err)
	require.NoError(t, b.AddDecay(table))
	r, err := solver.NewReactor(b.Export())
	require.NoError(t, err)
	return r
}

// TestNewReactor_Guards covers the constructor validation.
func TestNewReactor_Guards(t *testing.T) {
	_, err := solver.NewReactor(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = solver.NewReactor(rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestEvolve_Guards covers nil state, negative time and size mismatch.
// None of the failures may touch history.
func TestEvolve_Guards(t *testing.T) {
	r := decayReactor(t, []isotope.Code{u238}, rates.DecayTable{})

	assert.ErrorIs(t, r.Evolve(nil, 1), solver.ErrNilState)

	st, err := fuel.New([]isotope.Code{u238}, []float64{1})
	require.NoError(t, err)
	assert.ErrorIs(t, r.Evolve(st, -1), solver.ErrNegativeTime)

	wide, err := fuel.New([]isotope.Code{u238, th234}, []float64{1, 0})
	require.NoError(t, err)
	assert.ErrorIs(t, r.Evolve(wide, 1), solver.ErrTypeMismatch)

	assert.Equal(t, 1, st.Steps())
	assert.Equal(t, 1, wide.Steps())
}

// TestEvolve_ZeroDt verifies the exact identity: the appended vector
// equals the current one bit for bit.
func TestEvolve_ZeroDt(t *testing.T) {
	r := decayReactor(t, []isotope.Code{u238}, rates.DecayTable{
		u238: {Lambda: 0.1},
	})
	st, err := fuel.New([]isotope.Code{u238}, []float64{0.7})
	require.NoError(t, err)

	require.NoError(t, r.Evolve(st, 0))
	assert.Equal(t, 2, st.Steps())
	assert.Equal(t, []float64{0.7}, st.Current(), "dt=0 must be exact identity")
}

// TestEvolve_DecayLaw verifies the closed form N(t) = N0·exp(-λt) for a
// lone decaying isotope with no tracked children.
func TestEvolve_DecayLaw(t *testing.T) {
	const (
		lambda = 0.05
		n0     = 2.5
	)
	r := decayReactor(t, []isotope.Code{u238}, rates.DecayTable{
		u238: {Lambda: lambda},
	})
	st, err := fuel.New([]isotope.Code{u238}, []float64{n0})
	require.NoError(t, err)

	for _, dt := range []float64{1, 10, 100} {
		require.NoError(t, r.Evolve(st, dt))
	}

	// Three steps compose: total elapsed time is 111.
	assert.InEpsilon(t, n0*math.Exp(-lambda*111), st.Current()[0], 1e-10)
	assert.Equal(t, 4, st.Steps())
}

// TestEvolve_ChainConservation verifies that a fully tracked
// parent→child chain conserves total concentration at every step.
func TestEvolve_ChainConservation(t *testing.T) {
	r := decayReactor(t, []isotope.Code{u238, th234}, rates.DecayTable{
		u238: {Lambda: 0.2, Children: []isotope.Code{th234}, Probs: []float64{1}},
	})
	st, err := fuel.New([]isotope.Code{u238, th234}, []float64{1, 0})
	require.NoError(t, err)

	for step := 0; step < 5; step++ {
		require.NoError(t, r.Evolve(st, 3.0))
		cur := st.Current()
		assert.InDelta(t, 1.0, cur[0]+cur[1], 1e-10, "step %d", step)
		assert.GreaterOrEqual(t, cur[0], 0.0)
		assert.GreaterOrEqual(t, cur[1], 0.0)
	}
}

// TestEvolve_UraniumChain is the end-to-end scenario: the four-isotope
// U-238 chain over 1e10 seconds must conserve mass, barely deplete the
// parent and hold the short-lived daughters at secular equilibrium.
func TestEvolve_UraniumChain(t *testing.T) {
	const (
		l1 = 4.9e-18 // U-238
		l2 = 3.3e-7  // Th-234
		l3 = 2.3e-4  // Pa-234
		dt = 1e10
	)
	tracked := []isotope.Code{u238, th234, pa234, u234}
	table := rates.DecayTable{
		u238:  {Lambda: l1, Children: []isotope.Code{th234}, Probs: []float64{1}},
		th234: {Lambda: l2, Children: []isotope.Code{pa234}, Probs: []float64{1}},
		pa234: {Lambda: l3, Children: []isotope.Code{u234}, Probs: []float64{1}},
		// U-234 stable by omission.
	}

	r := decayReactor(t, tracked, table)
	st, err := fuel.New(tracked, []float64{1, 0, 0, 0})
	require.NoError(t, err)
	require.NoError(t, r.Evolve(st, dt))

	cur := st.Current()

	// Closed chain: mass conserved.
	var sum float64
	for _, v := range cur {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-8)

	// Parent barely depleted.
	nU238 := math.Exp(-l1 * dt)
	assert.InEpsilon(t, nU238, cur[0], 1e-10)
	assert.Less(t, cur[0], 1.0)

	// Th-234 at secular equilibrium: production λ1·N1 equals loss λ2·N2.
	wantTh := l1 / (l2 - l1) * (math.Exp(-l1*dt) - math.Exp(-l2*dt))
	assert.InEpsilon(t, wantTh, cur[1], 1e-6)

	// Pa-234 likewise, to the accuracy of the equilibrium approximation.
	assert.InEpsilon(t, l1/l3*nU238, cur[2], 1e-2)

	// The stable end of the chain has collected the rest. Tolerance is
	// relative to the tiny depleted fraction, where the propagator's
	// column-sum roundoff dominates.
	assert.InEpsilon(t, 1-nU238, cur[3]+cur[1]+cur[2], 1e-3)
}

// TestEvolve_InstabilityWarning verifies the degradation contract: an
// extreme squaring depth returns ErrNumericalInstability while the
// best-effort vector is still appended.
func TestEvolve_InstabilityWarning(t *testing.T) {
	q := mustDense(t, 1, 1, []float64{-2e20})
	r, err := solver.NewReactor(q)
	require.NoError(t, err)

	st, err := fuel.New([]isotope.Code{u238}, []float64{1})
	require.NoError(t, err)

	err = r.Evolve(st, 1)
	assert.ErrorIs(t, err, matrix.ErrNumericalInstability)
	assert.Equal(t, 2, st.Steps(), "best-effort result must be committed")
	assert.InDelta(t, 0, st.Current()[0], 1e-300, "fully decayed")
}

// TestReactor_MatrixCopy verifies isolation of the wrapped generator.
func TestReactor_MatrixCopy(t *testing.T) {
	q := mustDense(t, 1, 1, []float64{-0.5})
	r, err := solver.NewReactor(q)
	require.NoError(t, err)

	// Mutating the source after construction changes nothing.
	require.NoError(t, q.Set(0, 0, 99))
	got, err := r.Matrix().At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -0.5, got)
}

// mustDense builds an r×c matrix from row-major values.
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
