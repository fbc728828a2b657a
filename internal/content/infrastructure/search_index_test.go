package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIndexReindexAndRemove(t *testing.T) {
	index := NewInMemorySearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Reindex(ctx, "doc-1", "doc-2"))

	_, ok := index.IndexedAt("doc-1")
	assert.True(t, ok)
	_, ok = index.IndexedAt("doc-2")
	assert.True(t, ok)

	require.NoError(t, index.Remove(ctx, "doc-1"))
	_, ok = index.IndexedAt("doc-1")
	assert.False(t, ok)
	_, ok = index.IndexedAt("doc-2")
	assert.True(t, ok)
}

func TestSearchIndexReindexAll(t *testing.T) {
	index := NewInMemorySearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Reindex(ctx, "doc-1"))
	before, _ := index.IndexedAt("doc-1")

	require.NoError(t, index.ReindexAll(ctx))

	after, _ := index.IndexedAt("doc-1")
	assert.False(t, after.Before(before))
	assert.False(t, index.LastFullReindex().IsZero())
}
