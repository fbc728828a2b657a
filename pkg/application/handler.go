package application

import (
	"context"

	"github.com/mateusmacedo/go-eventing/pkg/domain"
)

// NotificationHandler define a interface para assinantes de notificações.
type NotificationHandler interface {
	Handle(ctx context.Context, event domain.FiredEvent) error
}

// NotificationHandlerFunc adapta uma função simples em NotificationHandler.
type NotificationHandlerFunc func(ctx context.Context, event domain.FiredEvent) error

func (f NotificationHandlerFunc) Handle(ctx context.Context, event domain.FiredEvent) error {
	return f(ctx, event)
}

// HandlerRegistry define a interface para o registro de assinantes por tipo de
// notificação, fornecido pelo host antes do primeiro despacho.
type HandlerRegistry interface {
	RegisterHandler(eventType domain.Type, handler NotificationHandler) // Registra um assinante para um tipo
	HandlersFor(eventType domain.Type) []NotificationHandler            // Assinantes na ordem de registro
}

// NotificationDispatcher define a interface para a entrega de um lote já
// resolvido aos assinantes registrados.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, batch domain.Batch) error
}
