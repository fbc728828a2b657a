package application

import (
	"context"

	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

// CacheInvalidator define a interface para a invalidação de entradas de cache.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, ids ...string) error
	InvalidateAll(ctx context.Context) error
}

// SearchIndexer define a interface para o índice de busca do acervo.
type SearchIndexer interface {
	Reindex(ctx context.Context, ids ...string) error
	ReindexAll(ctx context.Context) error
	Remove(ctx context.Context, ids ...string) error
}

type cacheRefreshHandler struct {
	cache  CacheInvalidator
	logger pkgApp.AppLogger
}

// NewCacheRefreshHandler cria o assinante que invalida o cache das entidades
// afetadas por um evento, respeitando o escopo ALL.
func NewCacheRefreshHandler(cache CacheInvalidator, logger pkgApp.AppLogger) pkgApp.NotificationHandler {
	return &cacheRefreshHandler{
		cache:  cache,
		logger: logger,
	}
}

func (h *cacheRefreshHandler) Handle(ctx context.Context, event pkgDomain.FiredEvent) error {
	if event.Scope.IsAll() {
		if err := h.cache.InvalidateAll(ctx); err != nil {
			pkgApp.LogError(ctx, h.logger, "Erro ao invalidar cache inteiro", err, pkgApp.EventFields(event))
			return err
		}
		h.logger.Info(ctx, "Cache inteiro invalidado", pkgApp.EventFields(event))
		return nil
	}

	if err := h.cache.Invalidate(ctx, event.Scope.IDs()...); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao invalidar cache", err, pkgApp.EventFields(event))
		return err
	}
	h.logger.Info(ctx, "Cache invalidado", pkgApp.EventFields(event))
	return nil
}

type searchIndexHandler struct {
	indexer SearchIndexer
	logger  pkgApp.AppLogger
}

// NewSearchIndexHandler cria o assinante que mantém o índice de busca: eventos
// de descarte removem os documentos, os demais reindexam.
func NewSearchIndexHandler(indexer SearchIndexer, logger pkgApp.AppLogger) pkgApp.NotificationHandler {
	return &searchIndexHandler{
		indexer: indexer,
		logger:  logger,
	}
}

func (h *searchIndexHandler) Handle(ctx context.Context, event pkgDomain.FiredEvent) error {
	if event.Type() == TypeTrashed {
		if err := h.indexer.Remove(ctx, event.Scope.IDs()...); err != nil {
			pkgApp.LogError(ctx, h.logger, "Erro ao remover do índice", err, pkgApp.EventFields(event))
			return err
		}
		h.logger.Info(ctx, "Documentos removidos do índice", pkgApp.EventFields(event))
		return nil
	}

	if event.Scope.IsAll() {
		if err := h.indexer.ReindexAll(ctx); err != nil {
			pkgApp.LogError(ctx, h.logger, "Erro ao reindexar acervo", err, pkgApp.EventFields(event))
			return err
		}
		h.logger.Info(ctx, "Acervo reindexado", pkgApp.EventFields(event))
		return nil
	}

	if err := h.indexer.Reindex(ctx, event.Scope.IDs()...); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao reindexar documentos", err, pkgApp.EventFields(event))
		return err
	}
	h.logger.Info(ctx, "Documentos reindexados", pkgApp.EventFields(event))
	return nil
}

type auditLogHandler struct {
	logger pkgApp.AppLogger
}

// NewAuditLogHandler cria o assinante que registra cada evento entregue.
func NewAuditLogHandler(logger pkgApp.AppLogger) pkgApp.NotificationHandler {
	return &auditLogHandler{
		logger: logger,
	}
}

func (h *auditLogHandler) Handle(ctx context.Context, event pkgDomain.FiredEvent) error {
	pkgApp.LogInfo(ctx, h.logger, "Evento recebido", pkgApp.EventFields(event))
	return nil
}
