package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUpsertAndGet(t *testing.T) {
	store := setupTestStore(t)

	g := &Game{
		ID:            13,
		Name:          "Catan",
		YearPublished: ptr(1995),
		Rank:          ptr(429),
		Average:       7.1,
		MinPlayers:    3,
		MaxPlayers:    4,
		PlayingTime:   120,
	}
	require.NoError(t, store.Upsert(g))

	got, err := store.Get(13)
	require.NoError(t, err)
	assert.Equal(t, "Catan", got.Name)
	require.NotNil(t, got.Rank)
	assert.Equal(t, 429, *got.Rank)
	require.NotNil(t, got.YearPublished)
	assert.Equal(t, 1995, *got.YearPublished)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestStoreUpsertReplaces(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Upsert(&Game{ID: 13, Name: "Catan"}))
	require.NoError(t, store.Upsert(&Game{ID: 13, Name: "CATAN", Rank: ptr(5)}))

	got, err := store.Get(13)
	require.NoError(t, err)
	assert.Equal(t, "CATAN", got.Name)
	require.NotNil(t, got.Rank)
	assert.Equal(t, 5, *got.Rank)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreGetNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreGetByIDsPreservesOrder(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.UpsertBatch([]*Game{
		{ID: 1, Name: "Azul"},
		{ID: 2, Name: "Catan"},
		{ID: 3, Name: "Wingspan"},
	}))

	games, err := store.GetByIDs([]int64{3, 1, 2})
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "Wingspan", games[0].Name)
	assert.Equal(t, "Azul", games[1].Name)
	assert.Equal(t, "Catan", games[2].Name)
}

func TestStoreGetByIDsSkipsMissing(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Upsert(&Game{ID: 1, Name: "Azul"}))

	games, err := store.GetByIDs([]int64{99, 1})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Azul", games[0].Name)
}

func TestStoreGetByIDsEmpty(t *testing.T) {
	store := setupTestStore(t)

	games, err := store.GetByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGameRanked(t *testing.T) {
	assert.True(t, (&Game{Rank: ptr(1)}).Ranked())
	assert.False(t, (&Game{}).Ranked())
}
