package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/shelfscan/internal/catalog"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRankSimilarityBeatsPopularity(t *testing.T) {
	// Exact name match wins even against a far more popular partial match.
	games := []*catalog.Game{
		{ID: 1, Name: "Catan", Rank: ptr(5)},
		{ID: 2, Name: "Catan: Cities and Knights", Rank: ptr(1)},
	}

	candidates := Rank("Catan", games)
	require.Len(t, candidates, 2)
	assert.Equal(t, int64(1), candidates[0].Game.ID)
	assert.Equal(t, 1.0, candidates[0].Similarity)
	assert.Equal(t, 0.8, candidates[1].Similarity)

	best := BestMatch(candidates)
	require.NotNil(t, best)
	assert.Equal(t, "Catan", best.Game.Name)
}

func TestRankPopularityBreaksTies(t *testing.T) {
	// Identical names score identically; the more popular row wins.
	games := []*catalog.Game{
		{ID: 1, Name: "Dominion", Rank: ptr(200)},
		{ID: 2, Name: "Dominion", Rank: ptr(50)},
		{ID: 3, Name: "Dominion"}, // unranked sorts last
	}

	candidates := Rank("Dominion", games)
	require.Len(t, candidates, 3)
	assert.Equal(t, int64(2), candidates[0].Game.ID)
	assert.Equal(t, int64(1), candidates[1].Game.ID)
	assert.Equal(t, int64(3), candidates[2].Game.ID)
}

func TestRankDiscardsBelowThreshold(t *testing.T) {
	games := []*catalog.Game{
		{ID: 1, Name: "Catan", Rank: ptr(1)},
	}

	candidates := Rank("Completely Unrelated Title", games)
	assert.Empty(t, candidates)
	assert.Nil(t, BestMatch(candidates))
}

func TestRankOrderingInvariant(t *testing.T) {
	games := []*catalog.Game{
		{ID: 1, Name: "Azul: Summer Pavilion", Rank: ptr(100)},
		{ID: 2, Name: "Azul", Rank: ptr(75)},
		{ID: 3, Name: "Azul: Stained Glass of Sintra", Rank: ptr(250)},
	}

	candidates := Rank("Azul", games)
	for i := 1; i < len(candidates); i++ {
		prev, cur := candidates[i-1], candidates[i]
		assert.GreaterOrEqual(t, prev.Similarity, cur.Similarity)
		if prev.Similarity == cur.Similarity && prev.Game.Rank != nil && cur.Game.Rank != nil {
			assert.LessOrEqual(t, *prev.Game.Rank, *cur.Game.Rank)
		}
	}
}

func TestRankCaseInsensitive(t *testing.T) {
	games := []*catalog.Game{
		{ID: 1, Name: "CATAN", Rank: ptr(5)},
	}

	candidates := Rank("catan", games)
	require.Len(t, candidates, 1)
	assert.Equal(t, 1.0, candidates[0].Similarity)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank("Catan", nil))
}
