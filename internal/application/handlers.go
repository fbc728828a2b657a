package application

import (
	"context"

	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

// ThumbnailGenerator define a interface para a geração de miniaturas.
type ThumbnailGenerator interface {
	Generate(ctx context.Context, ids ...string) error
}

type thumbnailHandler struct {
	generator ThumbnailGenerator
	logger    pkgApp.AppLogger
}

// NewThumbnailHandler cria o assinante que gera miniaturas das mídias salvas.
func NewThumbnailHandler(generator ThumbnailGenerator, logger pkgApp.AppLogger) pkgApp.NotificationHandler {
	return &thumbnailHandler{
		generator: generator,
		logger:    logger,
	}
}

func (h *thumbnailHandler) Handle(ctx context.Context, event pkgDomain.FiredEvent) error {
	if event.Scope.IsAll() {
		h.logger.Info(ctx, "Evento sem escopo delimitado ignorado pelas miniaturas", pkgApp.EventFields(event))
		return nil
	}

	if err := h.generator.Generate(ctx, event.Scope.IDs()...); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao gerar miniaturas", err, pkgApp.EventFields(event))
		return err
	}

	h.logger.Info(ctx, "Miniaturas geradas", pkgApp.EventFields(event))
	return nil
}
