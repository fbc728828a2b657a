package infrastructure

import (
	"sync"

	"github.com/mateusmacedo/go-eventing/pkg/application"
	"github.com/mateusmacedo/go-eventing/pkg/domain"
)

type inMemoryHandlerRegistry struct {
	handlers map[domain.Type][]application.NotificationHandler
	mu       sync.RWMutex
}

func NewInMemoryHandlerRegistry() application.HandlerRegistry {
	return &inMemoryHandlerRegistry{
		handlers: make(map[domain.Type][]application.NotificationHandler),
	}
}

func (r *inMemoryHandlerRegistry) RegisterHandler(eventType domain.Type, handler application.NotificationHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

func (r *inMemoryHandlerRegistry) HandlersFor(eventType domain.Type) []application.NotificationHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registered, found := r.handlers[eventType]
	if !found {
		return nil
	}
	out := make([]application.NotificationHandler, len(registered))
	copy(out, registered)
	return out
}
