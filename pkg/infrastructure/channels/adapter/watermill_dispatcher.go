package adapter

import (
	"context"
	"errors"
	"sort"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-eventing/pkg/application"
	"github.com/mateusmacedo/go-eventing/pkg/domain"
)

// WatermillFanoutDispatcher decora um despachante com a publicação de cada
// evento sobrevivente em um tópico watermill em processo, um tópico por tipo
// de notificação. Assinantes fora do registro (projeções, websockets) podem
// consumir os tópicos sem participar do despacho direto.
type WatermillFanoutDispatcher struct {
	publisher message.Publisher
	inner     application.NotificationDispatcher
	logger    application.AppLogger
}

func NewWatermillFanoutDispatcher(publisher message.Publisher, inner application.NotificationDispatcher, logger application.AppLogger) *WatermillFanoutDispatcher {
	return &WatermillFanoutDispatcher{
		publisher: publisher,
		inner:     inner,
		logger:    logger,
	}
}

// eventEnvelope é o formato JSON publicado nos tópicos em processo.
type eventEnvelope struct {
	Type     string   `json:"type"`
	All      bool     `json:"all"`
	Entities []string `json:"entities,omitempty"`
	Seq      int      `json:"seq"`
}

// Dispatch publica os eventos do lote resolvido e delega ao despachante
// interno. Falhas de publicação são agregadas junto às falhas de assinantes,
// sem interromper o restante do lote.
func (d *WatermillFanoutDispatcher) Dispatch(ctx context.Context, batch domain.Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var failures []application.HandlerFailure
	for _, event := range batch.Events() {
		if err := d.publishEvent(ctx, event); err != nil {
			failures = append(failures, application.HandlerFailure{
				Event:   event.Type(),
				Seq:     event.Seq,
				Handler: "watermill.Publisher",
				Err:     err,
			})
		}
	}

	err := d.inner.Dispatch(ctx, batch)

	var dispatchErr *application.DispatchError
	switch {
	case err == nil:
	case errors.As(err, &dispatchErr):
		failures = append(failures, dispatchErr.Failures...)
	default:
		return err
	}

	if len(failures) > 0 {
		sort.SliceStable(failures, func(i, j int) bool {
			return failures[i].Seq < failures[j].Seq
		})
		return &application.DispatchError{Failures: failures}
	}
	return nil
}

func (d *WatermillFanoutDispatcher) publishEvent(ctx context.Context, event domain.FiredEvent) error {
	payload, err := application.MarshalPayload(eventEnvelope{
		Type:     string(event.Type()),
		All:      event.Scope.IsAll(),
		Entities: event.Scope.IDs(),
		Seq:      event.Seq,
	})
	if err != nil {
		application.LogError(ctx, d.logger, "error marshalling event envelope", err, application.EventFields(event))
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := d.publisher.Publish(string(event.Type()), msg); err != nil {
		application.LogError(ctx, d.logger, "error publishing event", err, application.EventFields(event))
		return err
	}

	d.logger.Debug(ctx, "event published", application.EventFields(event))
	return nil
}
