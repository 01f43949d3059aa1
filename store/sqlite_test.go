// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sableye/fuel"
	"sableye/isotope"
	"sableye/store"
)

// openStore initializes a store on a fresh temp database and arranges
// its cleanup.
func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s := store.NewSQLiteStore(filepath.Join(t.TempDir(), "sableye.db"))
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestSQLiteStore_Lifecycle covers Init guards and double Close.
func TestSQLiteStore_Lifecycle(t *testing.T) {
	ctx := context.Background()

	empty := store.NewSQLiteStore("")
	assert.ErrorIs(t, empty.Init(ctx), store.ErrMissingPath)

	uninitialized := store.NewSQLiteStore(filepath.Join(t.TempDir(), "x.db"))
	err := uninitialized.SaveRun(ctx, "r", nil)
	assert.ErrorIs(t, err, store.ErrNotInitialized)
	_, _, _, err = uninitialized.LoadHistory(ctx, "r")
	assert.ErrorIs(t, err, store.ErrNotInitialized)

	s := openStore(t)
	require.NoError(t, s.Init(ctx), "second Init is a no-op")
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second Close is a no-op")
}

// TestSQLiteStore_RoundTrip saves a short run and reads it back.
func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	isotopes := []isotope.Code{u238, th234}
	st, err := fuel.New(isotopes, []float64{1, 0})
	require.NoError(t, err)
	require.NoError(t, st.Append([]float64{0.9, 0.1}))
	require.NoError(t, st.Append([]float64{0.8, 0.2}))

	require.NoError(t, s.SaveRun(ctx, "chain-a", st))

	labels, history, found, err := s.LoadHistory(ctx, "chain-a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, isotopes, labels)
	assert.Equal(t, st.History(), history)
}

// TestSQLiteStore_MissingRun verifies the not-found path is not an
// error.
func TestSQLiteStore_MissingRun(t *testing.T) {
	s := openStore(t)

	_, _, found, err := s.LoadHistory(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

// TestSQLiteStore_SaveReplaces verifies that re-saving a run id
// replaces the old rows instead of mixing histories.
func TestSQLiteStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	long, err := fuel.New([]isotope.Code{u238}, []float64{1})
	require.NoError(t, err)
	require.NoError(t, long.Append([]float64{0.5}))
	require.NoError(t, long.Append([]float64{0.25}))
	require.NoError(t, s.SaveRun(ctx, "run", long))

	short, err := fuel.New([]isotope.Code{u238, th234}, []float64{2, 3})
	require.NoError(t, err)
	require.NoError(t, s.SaveRun(ctx, "run", short))

	labels, history, found, err := s.LoadHistory(ctx, "run")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []isotope.Code{u238, th234}, labels)
	require.Len(t, history, 1, "old rows must be gone")
	assert.Equal(t, []float64{2, 3}, history[0])
}
