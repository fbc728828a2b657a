package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-eventing/internal/content/domain"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

func TestInMemoryRepositorySaveAndFind(t *testing.T) {
	repo := NewInMemoryDocumentRepository(nopLogger{})
	ctx := context.Background()

	document := domain.Document{ID: "doc-1", Title: "Notícia", Folder: "news"}
	require.NoError(t, repo.Save(ctx, document))

	found, err := repo.FindByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, document, found)

	_, err = repo.FindByID(ctx, "doc-2")
	assert.Error(t, err)
}

func TestInMemoryRepositoryRejectsDuplicate(t *testing.T) {
	repo := NewInMemoryDocumentRepository(nopLogger{})
	ctx := context.Background()

	document := domain.Document{ID: "doc-1"}
	require.NoError(t, repo.Save(ctx, document))
	assert.Error(t, repo.Save(ctx, document))
}

func TestInMemoryRepositoryFindByFolder(t *testing.T) {
	repo := NewInMemoryDocumentRepository(nopLogger{})
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Document{ID: "doc-1", Folder: "news"}))
	require.NoError(t, repo.Save(ctx, domain.Document{ID: "doc-2", Folder: "news"}))
	require.NoError(t, repo.Save(ctx, domain.Document{ID: "doc-3", Folder: "archive"}))

	documents, err := repo.FindByFolder(ctx, "news")
	require.NoError(t, err)
	assert.Len(t, documents, 2)
}

func TestInMemoryRepositoryUpdate(t *testing.T) {
	repo := NewInMemoryDocumentRepository(nopLogger{})
	ctx := context.Background()

	assert.Error(t, repo.Update(ctx, domain.Document{ID: "doc-1"}))

	require.NoError(t, repo.Save(ctx, domain.Document{ID: "doc-1", Title: "Antes"}))
	require.NoError(t, repo.Update(ctx, domain.Document{ID: "doc-1", Title: "Depois"}))

	found, err := repo.FindByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Depois", found.Title)
}

func TestInMemoryRepositoryDocumentsReturnsCopy(t *testing.T) {
	repo := NewInMemoryDocumentRepository(nopLogger{})
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Document{ID: "doc-1"}))

	snapshot := repo.Documents()
	delete(snapshot, "doc-1")

	_, err := repo.FindByID(ctx, "doc-1")
	assert.NoError(t, err)
}
