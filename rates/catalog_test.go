// SPDX-License-Identifier: MIT

package rates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sableye/isotope"
	"sableye/rates"
)

// TestDefaultCatalog_Shape verifies the catalog size, MT uniqueness and
// the single fission sentinel.
func TestDefaultCatalog_Shape(t *testing.T) {
	cat := rates.DefaultCatalog()
	require.Len(t, cat, 30)

	seen := make(map[int]bool, len(cat))
	fissionEntries := 0
	for _, r := range cat {
		assert.False(t, seen[r.MT], "duplicate MT=%d", r.MT)
		seen[r.MT] = true
		if r.RoutesThroughYields {
			fissionEntries++
			assert.Equal(t, rates.FissionMT, r.MT)
		}
	}
	assert.Equal(t, 1, fissionEntries, "exactly one yield-routed entry")
}

// TestCatalog_ByMT covers hit and miss lookups.
func TestCatalog_ByMT(t *testing.T) {
	cat := rates.DefaultCatalog()

	r, err := cat.ByMT(102)
	require.NoError(t, err)
	assert.Equal(t, "(n,g)", r.Label)

	_, err = cat.ByMT(9999)
	assert.ErrorIs(t, err, rates.ErrUnknownReaction)
}

// TestReaction_Product checks hand-computed transforms on U-238.
func TestReaction_Product(t *testing.T) {
	cat := rates.DefaultCatalog()
	u238 := isotope.MustParse("0922380000")

	cases := []struct {
		mt   int
		want string
	}{
		{102, "0922390001"}, // (n,g): A+1, first excited state
		{16, "0922370000"},  // (n,2n): A-1, ground (already ground, saturates)
		{107, "0902350000"}, // (n,a): A-3, Z-2
		{103, "0912370000"}, // (n,p): A-1, Z-1
	}
	for _, tc := range cases {
		r, err := cat.ByMT(tc.mt)
		require.NoError(t, err)
		product, err := r.Product(u238)
		require.NoError(t, err, "MT=%d", tc.mt)
		assert.Equal(t, tc.want, product.String(), "MT=%d (%s)", tc.mt, r.Label)
	}
}

// TestReaction_Product_FissionSentinel verifies that the sentinel entry
// refuses a fixed transform.
func TestReaction_Product_FissionSentinel(t *testing.T) {
	fission, err := rates.DefaultCatalog().ByMT(rates.FissionMT)
	require.NoError(t, err)
	require.True(t, fission.RoutesThroughYields)

	_, err = fission.Product(isotope.MustParse("0922350000"))
	assert.ErrorIs(t, err, rates.ErrUnknownReaction)
}

// TestReaction_Product_Unphysical verifies that a transform driving the
// nucleus out of range surfaces the isotope-level error.
func TestReaction_Product_Unphysical(t *testing.T) {
	n3a, err := rates.DefaultCatalog().ByMT(23) // ΔA=-12, ΔZ=-6
	require.NoError(t, err)

	light := isotope.MustParse("0030060000") // Li-6, cannot lose 12 nucleons
	_, err = n3a.Product(light)
	assert.ErrorIs(t, err, isotope.ErrUnphysical)
}
