package infrastructure

import (
	"context"
	"errors"
	"sync"

	"github.com/mateusmacedo/go-eventing/internal/content/domain"
	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
)

// InMemoryDocumentRepository é uma implementação em memória do repositório de
// documentos, para testes e execução local.
type InMemoryDocumentRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.Document
	logger pkgApp.AppLogger
}

func NewInMemoryDocumentRepository(logger pkgApp.AppLogger) *InMemoryDocumentRepository {
	return &InMemoryDocumentRepository{
		data:   make(map[string]domain.Document),
		logger: logger,
	}
}

func (r *InMemoryDocumentRepository) Save(ctx context.Context, document domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[document.ID]; exists {
		r.logger.Error(ctx, "document already exists", map[string]interface{}{
			"id": document.ID,
		})
		return errors.New("document already exists")
	}

	r.data[document.ID] = document
	r.logger.Info(ctx, "document saved", map[string]interface{}{
		"id": document.ID,
	})
	return nil
}

func (r *InMemoryDocumentRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	document, exists := r.data[id]
	if !exists {
		r.logger.Error(ctx, "document not found", map[string]interface{}{
			"id": id,
		})
		return domain.Document{}, errors.New("document not found")
	}
	return document, nil
}

func (r *InMemoryDocumentRepository) FindByFolder(ctx context.Context, folder string) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var documents []domain.Document
	for _, document := range r.data {
		if document.Folder == folder {
			documents = append(documents, document)
		}
	}
	return documents, nil
}

func (r *InMemoryDocumentRepository) Update(ctx context.Context, document domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[document.ID]; !exists {
		r.logger.Error(ctx, "document not found", map[string]interface{}{
			"id": document.ID,
		})
		return errors.New("document not found")
	}

	r.data[document.ID] = document
	r.logger.Info(ctx, "document updated", map[string]interface{}{
		"id": document.ID,
	})
	return nil
}

// Documents retorna uma cópia dos documentos guardados.
func (r *InMemoryDocumentRepository) Documents() map[string]domain.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Document, len(r.data))
	for id, document := range r.data {
		out[id] = document
	}
	return out
}
