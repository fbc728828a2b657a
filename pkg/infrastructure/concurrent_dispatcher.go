package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/mateusmacedo/go-eventing/pkg/application"
	"github.com/mateusmacedo/go-eventing/pkg/domain"
)

// concurrentDispatcher entrega o lote resolvido evento a evento, na ordem
// original, executando os assinantes de cada evento em goroutines com uma
// barreira de sincronização antes do próximo evento. A ordem lógica de
// despacho do lote é preservada; apenas assinantes do mesmo evento concorrem.
type concurrentDispatcher struct {
	registry application.HandlerRegistry
	logger   application.AppLogger
}

// NewConcurrentDispatcher cria uma nova instância do despachante concorrente.
func NewConcurrentDispatcher(registry application.HandlerRegistry, logger application.AppLogger) application.NotificationDispatcher {
	return &concurrentDispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Dispatch consulta o contexto uma única vez, antes do primeiro assinante.
// Cancelamentos posteriores não interrompem o lote: invocações em andamento
// executam até o fim para não deixar efeitos colaterais pela metade.
func (d *concurrentDispatcher) Dispatch(ctx context.Context, batch domain.Batch) error {
	if err := ctx.Err(); err != nil {
		d.logger.Info(ctx, "batch discarded before dispatch", map[string]interface{}{
			"batch_size": batch.Len(),
			"error":      err,
		})
		return err
	}

	var failures []application.HandlerFailure
	for _, event := range batch.Events() {
		failures = append(failures, d.dispatchEvent(ctx, event)...)
	}

	if len(failures) > 0 {
		sort.SliceStable(failures, func(i, j int) bool {
			if failures[i].Seq != failures[j].Seq {
				return failures[i].Seq < failures[j].Seq
			}
			return failures[i].Handler < failures[j].Handler
		})
		return &application.DispatchError{Failures: failures}
	}
	return nil
}

// dispatchEvent dispara os assinantes de um evento em goroutines e aguarda
// todos terminarem antes de retornar as falhas coletadas.
func (d *concurrentDispatcher) dispatchEvent(ctx context.Context, event domain.FiredEvent) []application.HandlerFailure {
	handlers := d.registry.HandlersFor(event.Type())
	if len(handlers) == 0 {
		d.logger.Info(ctx, "no handler registered for event", application.EventFields(event))
		return nil
	}

	var wg sync.WaitGroup
	failChan := make(chan application.HandlerFailure, len(handlers))
	done := make(chan struct{})

	go func() {
		wg.Wait()
		close(failChan)
		close(done)
	}()

	for _, handler := range handlers {
		wg.Add(1)
		go func(h application.NotificationHandler) {
			defer wg.Done()
			if err := h.Handle(ctx, event); err != nil {
				failChan <- application.HandlerFailure{
					Event:   event.Type(),
					Seq:     event.Seq,
					Handler: handlerName(h),
					Err:     err,
				}
				application.LogError(ctx, d.logger, "handler failed", err, application.EventFields(event))
			}
		}(handler)
	}

	<-done
	var failures []application.HandlerFailure
	for failure := range failChan {
		failures = append(failures, failure)
	}

	d.logger.Debug(ctx, "event dispatched", application.EventFields(event))
	return failures
}
