package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/storage"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, cache.Close())
	})
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	analysis := core.DatasetAnalysis{
		"CELL_LINE": {
			SemanticMeaning:     "Identifier of the cell line",
			DataTypesAndContent: "String.",
			PotentialSynonyms:   []string{"cell_line_name", "CellLine"},
		},
	}
	id := core.IDFromContent([]byte("gdsc.csv contents"))

	require.NoError(t, cache.PutAnalysis(ctx, id, analysis))

	got, err := cache.GetAnalysis(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, analysis, got)
}

func TestCacheMiss(t *testing.T) {
	cache := openTestCache(t)

	_, err := cache.GetAnalysis(context.Background(), core.IDFromContent([]byte("never stored")))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCacheOverwrite(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()
	id := core.IDFromContent([]byte("file"))

	require.NoError(t, cache.PutAnalysis(ctx, id, core.DatasetAnalysis{
		"old": {SemanticMeaning: "stale"},
	}))
	require.NoError(t, cache.PutAnalysis(ctx, id, core.DatasetAnalysis{
		"new": {SemanticMeaning: "fresh"},
	}))

	got, err := cache.GetAnalysis(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, got, "new")
	assert.NotContains(t, got, "old")
}

func TestCachePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	id := core.IDFromContent([]byte("persisted"))

	cache, err := Open(dir, false)
	require.NoError(t, err)
	require.NoError(t, cache.PutAnalysis(ctx, id, core.DatasetAnalysis{
		"Age": {SemanticMeaning: "Patient age in years"},
	}))
	require.NoError(t, cache.Close())

	reopened, err := Open(dir, false)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetAnalysis(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, got, "Age")
}

func TestCacheHonorsContext(t *testing.T) {
	cache := openTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cache.GetAnalysis(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, cache.PutAnalysis(ctx, 1, nil), context.Canceled)
}
