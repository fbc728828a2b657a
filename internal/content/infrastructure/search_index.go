package infrastructure

import (
	"context"
	"sync"
	"time"
)

// InMemorySearchIndex registra quais documentos estão indexados e quando. Faz
// as vezes de um índice de busca externo na execução local.
type InMemorySearchIndex struct {
	mu          sync.RWMutex
	entries     map[string]time.Time
	fullReindex time.Time
}

func NewInMemorySearchIndex() *InMemorySearchIndex {
	return &InMemorySearchIndex{
		entries: make(map[string]time.Time),
	}
}

func (i *InMemorySearchIndex) Reindex(_ context.Context, ids ...string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := time.Now()
	for _, id := range ids {
		i.entries[id] = now
	}
	return nil
}

func (i *InMemorySearchIndex) ReindexAll(_ context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := time.Now()
	i.fullReindex = now
	for id := range i.entries {
		i.entries[id] = now
	}
	return nil
}

func (i *InMemorySearchIndex) Remove(_ context.Context, ids ...string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, id := range ids {
		delete(i.entries, id)
	}
	return nil
}

// IndexedAt retorna o instante da última indexação do documento.
func (i *InMemorySearchIndex) IndexedAt(id string) (time.Time, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	at, ok := i.entries[id]
	return at, ok
}

// LastFullReindex retorna o instante da última reindexação completa.
func (i *InMemorySearchIndex) LastFullReindex() time.Time {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.fullReindex
}
