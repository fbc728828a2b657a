package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-eventing/internal/content/domain"
	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-eventing/pkg/infrastructure"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

type stubRepo struct {
	mu   sync.Mutex
	data map[string]domain.Document
}

func newStubRepo() *stubRepo {
	return &stubRepo{data: make(map[string]domain.Document)}
}

func (r *stubRepo) Save(_ context.Context, document domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[document.ID] = document
	return nil
}

func (r *stubRepo) FindByID(_ context.Context, id string) (domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	document, ok := r.data[id]
	if !ok {
		return domain.Document{}, errors.New("document not found")
	}
	return document, nil
}

func (r *stubRepo) FindByFolder(_ context.Context, folder string) ([]domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var documents []domain.Document
	for _, document := range r.data {
		if document.Folder == folder {
			documents = append(documents, document)
		}
	}
	return documents, nil
}

func (r *stubRepo) Update(_ context.Context, document domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[document.ID] = document
	return nil
}

type stubCache struct {
	mu          sync.Mutex
	invalidated [][]string
	allCalls    int
}

func (c *stubCache) Invalidate(_ context.Context, ids ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, ids)
	return nil
}

func (c *stubCache) InvalidateAll(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allCalls++
	return nil
}

type stubIndexer struct {
	mu        sync.Mutex
	reindexed [][]string
	removed   [][]string
	allCalls  int
}

func (i *stubIndexer) Reindex(_ context.Context, ids ...string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.reindexed = append(i.reindexed, ids)
	return nil
}

func (i *stubIndexer) ReindexAll(context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.allCalls++
	return nil
}

func (i *stubIndexer) Remove(_ context.Context, ids ...string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.removed = append(i.removed, ids)
	return nil
}

type contentFixture struct {
	service *ContentService
	repo    *stubRepo
	cache   *stubCache
	indexer *stubIndexer
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()

	gb := pkgDomain.NewGraphBuilder()
	RegisterEventTypes(gb)
	graph, err := gb.Build()
	require.NoError(t, err)

	registry := pkgInfra.NewInMemoryHandlerRegistry()
	dispatcher := pkgInfra.NewSequentialDispatcher(registry, nopLogger{})
	factory := pkgInfra.NewUnitOfWorkFactory(pkgDomain.NewResolver(graph), dispatcher, nopLogger{})

	repo := newStubRepo()
	cache := &stubCache{}
	indexer := &stubIndexer{}

	cacheHandler := NewCacheRefreshHandler(cache, nopLogger{})
	for _, eventType := range []pkgDomain.Type{TypeSaved, TypePublished, TypeUnpublished, TypeTrashed, TypeCacheRefreshed} {
		registry.RegisterHandler(eventType, cacheHandler)
	}

	indexHandler := NewSearchIndexHandler(indexer, nopLogger{})
	for _, eventType := range []pkgDomain.Type{TypeSaved, TypePublished, TypeUnpublished, TypeTrashed} {
		registry.RegisterHandler(eventType, indexHandler)
	}

	counter := 0
	idGenerator := func() string {
		counter++
		return "doc-" + string(rune('0'+counter))
	}

	service := NewContentService(repo, factory, idGenerator, nopLogger{})
	return &contentFixture{service: service, repo: repo, cache: cache, indexer: indexer}
}

func TestServiceSaveSuppressesCacheRefresh(t *testing.T) {
	f := newContentFixture(t)

	document, err := f.service.Save(context.Background(), SaveDocumentData{Title: "Notícia", Folder: "news"})
	require.NoError(t, err)
	require.NotEmpty(t, document.ID)

	stored, err := f.repo.FindByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notícia", stored.Title)

	// O CacheRefreshed disparado pelo save é coberto pelo próprio Saved:
	// o cache é invalidado uma única vez.
	assert.Equal(t, [][]string{{document.ID}}, f.cache.invalidated)
	assert.Equal(t, [][]string{{document.ID}}, f.indexer.reindexed)
}

func TestServicePublishCoversSaved(t *testing.T) {
	f := newContentFixture(t)

	document, err := f.service.Save(context.Background(), SaveDocumentData{ID: "doc-9", Title: "Rascunho"})
	require.NoError(t, err)

	f.cache.invalidated = nil
	f.indexer.reindexed = nil

	published, err := f.service.Publish(context.Background(), document.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)

	stored, err := f.repo.FindByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.True(t, stored.Published)

	// Saved e Published cobrem o mesmo documento; só o Published é entregue.
	assert.Equal(t, [][]string{{document.ID}}, f.cache.invalidated)
	assert.Equal(t, [][]string{{document.ID}}, f.indexer.reindexed)
}

func TestServiceTrashCoversMoved(t *testing.T) {
	f := newContentFixture(t)

	document, err := f.service.Save(context.Background(), SaveDocumentData{ID: "doc-9", Title: "Velho", Folder: "news"})
	require.NoError(t, err)

	f.cache.invalidated = nil
	f.indexer.reindexed = nil

	trashed, err := f.service.Trash(context.Background(), document.ID)
	require.NoError(t, err)
	assert.True(t, trashed.Trashed)
	assert.Equal(t, "trash", trashed.Folder)

	assert.Equal(t, [][]string{{document.ID}}, f.indexer.removed)
	assert.Equal(t, [][]string{{document.ID}}, f.cache.invalidated)
	assert.Empty(t, f.indexer.reindexed)
}

func TestServiceMoveDeliversMovedOnly(t *testing.T) {
	f := newContentFixture(t)

	document, err := f.service.Save(context.Background(), SaveDocumentData{ID: "doc-9", Folder: "news"})
	require.NoError(t, err)

	f.cache.invalidated = nil
	f.indexer.reindexed = nil

	moved, err := f.service.Move(context.Background(), document.ID, MoveDocumentData{Folder: "archive"})
	require.NoError(t, err)
	assert.Equal(t, "archive", moved.Folder)

	// Moved não tem assinantes de cache nem de índice registrados.
	assert.Empty(t, f.cache.invalidated)
	assert.Empty(t, f.indexer.reindexed)
}

func TestServiceRefreshCacheAll(t *testing.T) {
	f := newContentFixture(t)

	require.NoError(t, f.service.RefreshCache(context.Background(), RefreshCacheData{All: true}))

	assert.Equal(t, 1, f.cache.allCalls)
	assert.Empty(t, f.cache.invalidated)
}

func TestServiceRefreshCacheRejectsEmptySelection(t *testing.T) {
	f := newContentFixture(t)

	err := f.service.RefreshCache(context.Background(), RefreshCacheData{})
	require.ErrorIs(t, err, pkgDomain.ErrEmptyScope)
	assert.Equal(t, 0, f.cache.allCalls)
}

func TestServiceSurfacesHandlerFailures(t *testing.T) {
	f := newContentFixture(t)

	failing := pkgApp.NotificationHandlerFunc(func(context.Context, pkgDomain.FiredEvent) error {
		return errors.New("webhook fora do ar")
	})

	gb := pkgDomain.NewGraphBuilder()
	RegisterEventTypes(gb)
	graph, err := gb.Build()
	require.NoError(t, err)

	registry := pkgInfra.NewInMemoryHandlerRegistry()
	registry.RegisterHandler(TypeSaved, failing)
	dispatcher := pkgInfra.NewSequentialDispatcher(registry, nopLogger{})
	factory := pkgInfra.NewUnitOfWorkFactory(pkgDomain.NewResolver(graph), dispatcher, nopLogger{})

	service := NewContentService(f.repo, factory, func() string { return "doc-x" }, nopLogger{})

	document, err := service.Save(context.Background(), SaveDocumentData{Title: "Nova"})
	require.Error(t, err)

	var dispatchErr *pkgApp.DispatchError
	require.ErrorAs(t, err, &dispatchErr)

	// A mutação persiste mesmo com falha de assinante.
	stored, findErr := f.repo.FindByID(context.Background(), document.ID)
	require.NoError(t, findErr)
	assert.Equal(t, "Nova", stored.Title)
}
