package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSearcher(t *testing.T, games []*Game) *Searcher {
	t.Helper()
	store := setupTestStore(t)
	index := setupTestIndex(t)
	require.NoError(t, store.UpsertBatch(games))
	require.NoError(t, index.IndexBatch(games))
	return NewSearcher(store, index, testLogger())
}

func TestSearcherFindsByName(t *testing.T) {
	searcher := setupTestSearcher(t, []*Game{
		{ID: 13, Name: "Catan", Rank: ptr(429)},
		{ID: 926, Name: "Catan: Cities & Knights", Rank: ptr(500)},
		{ID: 230802, Name: "Azul", Rank: ptr(75)},
	})

	games, err := searcher.SearchGames(context.Background(), "Catan", 10)
	require.NoError(t, err)
	require.NotEmpty(t, games)

	names := make([]string, len(games))
	for i, g := range games {
		names[i] = g.Name
	}
	assert.Contains(t, names, "Catan")
	assert.NotContains(t, names, "Azul")
}

func TestSearcherOrdersByRank(t *testing.T) {
	searcher := setupTestSearcher(t, []*Game{
		{ID: 1, Name: "Dominion Empire", Rank: ptr(300)},
		{ID: 2, Name: "Dominion", Rank: ptr(50)},
		{ID: 3, Name: "Dominion Prototype"}, // unranked
	})

	games, err := searcher.SearchGames(context.Background(), "Dominion", 10)
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, int64(2), games[0].ID, "most popular first")
	assert.Equal(t, int64(1), games[1].ID)
	assert.Equal(t, int64(3), games[2].ID, "unranked last")
}

func TestSearcherRespectsLimit(t *testing.T) {
	var games []*Game
	for i := int64(1); i <= 20; i++ {
		games = append(games, &Game{ID: i, Name: "Carcassonne", Rank: ptr(int(i))})
	}
	searcher := setupTestSearcher(t, games)

	got, err := searcher.SearchGames(context.Background(), "Carcassonne", 10)
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestSearcherNoResults(t *testing.T) {
	searcher := setupTestSearcher(t, []*Game{
		{ID: 13, Name: "Catan", Rank: ptr(429)},
	})

	games, err := searcher.SearchGames(context.Background(), "zzzzqqqq", 10)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestSearcherAccentFolding(t *testing.T) {
	searcher := setupTestSearcher(t, []*Game{
		{ID: 164928, Name: "Orléans", Rank: ptr(30)},
	})

	games, err := searcher.SearchGames(context.Background(), "orleans", 10)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Orléans", games[0].Name)
}
