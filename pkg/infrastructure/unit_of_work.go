package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/mateusmacedo/go-eventing/pkg/application"
	"github.com/mateusmacedo/go-eventing/pkg/domain"
	"github.com/mateusmacedo/go-eventing/pkg/infrastructure/metrics"
)

// ErrUnitOfWorkClosed indica um Fire ou Flush depois do Flush da unidade.
var ErrUnitOfWorkClosed = errors.New("unit of work already flushed")

// eventUnitOfWork acumula os eventos de uma operação lógica e os entrega de
// uma só vez no Flush, depois da resolução de supersessão. A instância é
// confinada à goroutine da operação; nenhuma sincronização interna é
// necessária.
type eventUnitOfWork struct {
	id         string
	resolver   *domain.Resolver
	dispatcher application.NotificationDispatcher
	logger     application.AppLogger
	batch      domain.Batch
	flushed    bool
}

type unitOfWorkFactory struct {
	resolver   *domain.Resolver
	dispatcher application.NotificationDispatcher
	logger     application.AppLogger
}

// NewUnitOfWorkFactory cria uma fábrica de unidades de trabalho sobre um
// resolver e um despachante compartilhados.
func NewUnitOfWorkFactory(resolver *domain.Resolver, dispatcher application.NotificationDispatcher, logger application.AppLogger) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Begin abre uma unidade de trabalho com identificador próprio.
func (f *unitOfWorkFactory) Begin() application.UnitOfWork {
	return &eventUnitOfWork{
		id:         GenerateUUID(),
		resolver:   f.resolver,
		dispatcher: f.dispatcher,
		logger:     f.logger,
	}
}

func (uow *eventUnitOfWork) ID() string {
	return uow.id
}

func (uow *eventUnitOfWork) Len() int {
	return uow.batch.Len()
}

// Fire valida e acumula uma notificação no lote aberto. Um escopo vazio que
// não seja ALL é rejeitado antes de entrar no lote.
func (uow *eventUnitOfWork) Fire(notification domain.Notification) error {
	if uow.flushed {
		return ErrUnitOfWorkClosed
	}
	if notification.AffectedEntities().IsEmpty() {
		return fmt.Errorf("%s: %w", notification.NotificationName(), domain.ErrEmptyScope)
	}

	uow.batch.Append(notification)
	metrics.EventsFired.WithLabelValues(string(notification.NotificationName())).Inc()
	return nil
}

// Flush resolve o lote e o despacha aos assinantes, uma única vez. Um contexto
// já cancelado descarta o lote sem executar assinante algum; depois que o
// despacho começa, o lote executa até o fim.
func (uow *eventUnitOfWork) Flush(ctx context.Context) error {
	if uow.flushed {
		return ErrUnitOfWorkClosed
	}
	uow.flushed = true

	if err := ctx.Err(); err != nil {
		application.LogError(ctx, uow.logger, "unit of work cancelled before dispatch", err, map[string]interface{}{
			"work_id":    uow.id,
			"batch_size": uow.batch.Len(),
		})
		return err
	}

	resolved := uow.resolver.Resolve(uow.batch)
	uow.recordResolution(resolved)

	uow.logger.Info(ctx, "flushing unit of work", map[string]interface{}{
		"work_id":  uow.id,
		"fired":    uow.batch.Len(),
		"resolved": resolved.Len(),
	})

	err := uow.dispatcher.Dispatch(ctx, resolved)

	var dispatchErr *application.DispatchError
	if errors.As(err, &dispatchErr) {
		for _, failure := range dispatchErr.Failures {
			metrics.HandlerFailures.WithLabelValues(string(failure.Event)).Inc()
		}
	}
	return err
}

// recordResolution compara o lote original com o resolvido e atualiza os
// contadores de supressão e redução.
func (uow *eventUnitOfWork) recordResolution(resolved domain.Batch) {
	metrics.BatchesFlushed.Inc()
	metrics.BatchSize.Observe(float64(uow.batch.Len()))

	survived := make(map[int]domain.FiredEvent, resolved.Len())
	for _, event := range resolved.Events() {
		survived[event.Seq] = event
	}
	for _, original := range uow.batch.Events() {
		event, ok := survived[original.Seq]
		if !ok {
			metrics.EventsSuppressed.WithLabelValues(string(original.Type())).Inc()
			continue
		}
		if !original.Scope.IsAll() && event.Scope.Len() < original.Scope.Len() {
			metrics.EventsReduced.WithLabelValues(string(original.Type())).Inc()
		}
	}
}
