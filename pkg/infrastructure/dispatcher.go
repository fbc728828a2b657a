package infrastructure

import (
	"context"
	"fmt"

	"github.com/mateusmacedo/go-eventing/pkg/application"
	"github.com/mateusmacedo/go-eventing/pkg/domain"
)

// sequentialDispatcher entrega o lote resolvido na ordem original, um
// assinante por vez. Uma falha é isolada: os demais assinantes e eventos do
// lote continuam, e as falhas são agregadas em um único erro ao final.
type sequentialDispatcher struct {
	registry application.HandlerRegistry
	logger   application.AppLogger
}

// NewSequentialDispatcher cria uma nova instância do despachante sequencial.
func NewSequentialDispatcher(registry application.HandlerRegistry, logger application.AppLogger) application.NotificationDispatcher {
	return &sequentialDispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Dispatch percorre o lote já resolvido e invoca os assinantes de cada evento.
// Um contexto cancelado antes do primeiro assinante descarta o lote inteiro;
// depois disso o lote executa até o fim.
func (d *sequentialDispatcher) Dispatch(ctx context.Context, batch domain.Batch) error {
	if err := ctx.Err(); err != nil {
		d.logger.Info(ctx, "batch discarded before dispatch", map[string]interface{}{
			"batch_size": batch.Len(),
			"error":      err,
		})
		return err
	}

	var failures []application.HandlerFailure
	for _, event := range batch.Events() {
		handlers := d.registry.HandlersFor(event.Type())
		if len(handlers) == 0 {
			d.logger.Info(ctx, "no handler registered for event", application.EventFields(event))
			continue
		}

		for _, handler := range handlers {
			if err := handler.Handle(ctx, event); err != nil {
				failures = append(failures, application.HandlerFailure{
					Event:   event.Type(),
					Seq:     event.Seq,
					Handler: handlerName(handler),
					Err:     err,
				})
				application.LogError(ctx, d.logger, "handler failed", err, application.EventFields(event))
			}
		}
		d.logger.Debug(ctx, "event dispatched", application.EventFields(event))
	}

	if len(failures) > 0 {
		return &application.DispatchError{Failures: failures}
	}
	return nil
}

func handlerName(handler application.NotificationHandler) string {
	return fmt.Sprintf("%T", handler)
}
