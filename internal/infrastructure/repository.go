// internal/infrastructure/repository.go
package infrastructure

import (
	"context"
	"errors"
	"sync"

	"github.com/mateusmacedo/go-eventing/internal/domain"
)

// InMemoryMediaRepository é uma implementação em memória do repositório de mídias.
type InMemoryMediaRepository struct {
	mu   sync.RWMutex
	data map[string]domain.MediaAsset
}

func NewInMemoryMediaRepository() *InMemoryMediaRepository {
	return &InMemoryMediaRepository{
		data: make(map[string]domain.MediaAsset),
	}
}

func (r *InMemoryMediaRepository) Save(ctx context.Context, asset domain.MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[asset.ID]; exists {
		return errors.New("media already exists")
	}
	r.data[asset.ID] = asset
	return nil
}

func (r *InMemoryMediaRepository) FindByID(ctx context.Context, id string) (domain.MediaAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, exists := r.data[id]
	if !exists {
		return domain.MediaAsset{}, errors.New("media not found")
	}
	return asset, nil
}

func (r *InMemoryMediaRepository) Update(ctx context.Context, asset domain.MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[asset.ID]; !exists {
		return errors.New("media not found")
	}
	r.data[asset.ID] = asset
	return nil
}

// Assets retorna uma cópia dos dados armazenados.
func (r *InMemoryMediaRepository) Assets() map[string]domain.MediaAsset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.MediaAsset, len(r.data))
	for id, asset := range r.data {
		out[id] = asset
	}
	return out
}
