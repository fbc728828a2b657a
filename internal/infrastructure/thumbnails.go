// internal/infrastructure/thumbnails.go
package infrastructure

import (
	"context"
	"sync"
)

// InMemoryThumbnailGenerator registra as gerações de miniaturas em memória.
type InMemoryThumbnailGenerator struct {
	mu        sync.RWMutex
	generated map[string]int
}

func NewInMemoryThumbnailGenerator() *InMemoryThumbnailGenerator {
	return &InMemoryThumbnailGenerator{
		generated: make(map[string]int),
	}
}

func (g *InMemoryThumbnailGenerator) Generate(ctx context.Context, ids ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		g.generated[id]++
	}
	return nil
}

// Generations retorna quantas vezes cada mídia teve miniaturas geradas.
func (g *InMemoryThumbnailGenerator) Generations() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.generated))
	for id, count := range g.generated {
		out[id] = count
	}
	return out
}
