package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,name,yearpublished,rank,bayesaverage,average,usersrated,is_expansion,abstracts_rank
13,Catan,1995,429,6.9,7.1,120000,0,0
230802,Azul,2017,75,7.6,7.8,90000,0,0
999,Unranked Prototype,0,0,0,0,10,0,0
`

func TestImportCSV(t *testing.T) {
	store := setupTestStore(t)
	index := setupTestIndex(t)
	importer := NewImporter(store, index, testLogger())

	n, err := importer.ImportCSV(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	catan, err := store.Get(13)
	require.NoError(t, err)
	assert.Equal(t, "Catan", catan.Name)
	require.NotNil(t, catan.Rank)
	assert.Equal(t, 429, *catan.Rank)
	assert.InDelta(t, 7.1, catan.Average, 0.0001)

	// Zero rank and year are stored as NULL, not zero.
	proto, err := store.Get(999)
	require.NoError(t, err)
	assert.Nil(t, proto.Rank)
	assert.Nil(t, proto.YearPublished)

	count, err := index.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestImportCSVEnrichedColumns(t *testing.T) {
	store := setupTestStore(t)
	index := setupTestIndex(t)
	importer := NewImporter(store, index, testLogger())

	csv := "id,name,yearpublished,rank,average,minplayers,maxplayers,playingtime,averageweight,thumbnail\n" +
		"174430,Gloomhaven,2017,3,8.6,1,4,120,3.91,https://img.example/gloomhaven.jpg\n"

	n, err := importer.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	g, err := store.Get(174430)
	require.NoError(t, err)
	assert.Equal(t, 1, g.MinPlayers)
	assert.Equal(t, 4, g.MaxPlayers)
	assert.Equal(t, 120, g.PlayingTime)
	assert.InDelta(t, 3.91, g.Complexity, 0.0001)
	assert.Equal(t, "https://img.example/gloomhaven.jpg", g.ImageURL)

	// The plain ranks dump has none of these columns; the row still imports.
	n, err = importer.ImportCSV(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	catan, err := store.Get(13)
	require.NoError(t, err)
	assert.Zero(t, catan.MinPlayers)
	assert.Empty(t, catan.ImageURL)
}

func TestImportCSVSkipsMalformedRows(t *testing.T) {
	store := setupTestStore(t)
	index := setupTestIndex(t)
	importer := NewImporter(store, index, testLogger())

	csv := "id,name,yearpublished,rank\n" +
		"not-a-number,Broken,0,0\n" +
		"7,Good Game,2020,10\n" +
		"8,,2021,11\n"

	n, err := importer.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Get(7)
	assert.NoError(t, err)
}

func TestImportCSVMissingColumns(t *testing.T) {
	store := setupTestStore(t)
	index := setupTestIndex(t)
	importer := NewImporter(store, index, testLogger())

	_, err := importer.ImportCSV(context.Background(), strings.NewReader("foo,bar\n1,2\n"))
	assert.Error(t, err)
}
