package application

import (
	"context"

	"github.com/mateusmacedo/go-eventing/pkg/domain"
)

// UnitOfWork define a interface para o ciclo de vida dos eventos de uma
// operação lógica: eventos acumulam via Fire e são resolvidos e entregues de
// uma só vez no Flush.
type UnitOfWork interface {
	ID() string
	Fire(notification domain.Notification) error // Acumula um evento no lote aberto
	Flush(ctx context.Context) error             // Resolve o lote e despacha aos assinantes
	Len() int
}

// UnitOfWorkFactory define a interface para abrir unidades de trabalho.
type UnitOfWorkFactory interface {
	Begin() UnitOfWork
}
