package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/logbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKVStore_SetAndGet(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyLog, testutil.SampleLog))

	got, err := store.Get(ctx, KeyLog)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleLog, got)
}

func TestSQLiteKVStore_Get_NotFound(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteKVStore_SetOverwrites(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyRoundingUnit, "1"))
	require.NoError(t, store.Set(ctx, KeyRoundingUnit, "15"))

	got, err := store.Get(ctx, KeyRoundingUnit)
	require.NoError(t, err)
	assert.Equal(t, "15", got)
}

func TestSQLiteKVStore_EmptyValueIsStored(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyShortcutPrefix+"6", ""))

	got, err := store.Get(ctx, KeyShortcutPrefix+"6")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSQLiteKVStore_SetMany(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SetMany(ctx, map[string]string{
		KeyRoundingUnit:         "30",
		KeyShortcutPrefix + "1": "Work;Coding",
		KeyShortcutPrefix + "2": "^Break",
	}))

	for key, want := range map[string]string{
		KeyRoundingUnit:         "30",
		KeyShortcutPrefix + "1": "Work;Coding",
		KeyShortcutPrefix + "2": "^Break",
	} {
		got, err := store.Get(ctx, key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}
}

func TestSQLiteKVStore_Delete(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyLog, "x"))
	require.NoError(t, store.Delete(ctx, KeyLog))

	_, err := store.Get(ctx, KeyLog)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, KeyLog))
}
