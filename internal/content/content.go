package content

import (
	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-eventing/internal/content/application"
	"github.com/mateusmacedo/go-eventing/internal/content/domain"
	"github.com/mateusmacedo/go-eventing/internal/content/infrastructure"
	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

// RegisterEventTypes declara os tipos de notificação do módulo no builder do
// host. Deve ser chamada antes do Build do grafo.
func RegisterEventTypes(gb *pkgDomain.GraphBuilder) {
	application.RegisterEventTypes(gb)
}

type ContentSlice struct {
	httpHandler *infrastructure.ContentHTTPHandler
}

func NewContentSlice(
	registry pkgApp.HandlerRegistry,
	uowFactory pkgApp.UnitOfWorkFactory,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
	repository domain.DocumentRepository,
	cache application.CacheInvalidator,
	indexer application.SearchIndexer,
) *ContentSlice {
	service := application.NewContentService(repository, uowFactory, idGenerator, logger)

	cacheHandler := application.NewCacheRefreshHandler(cache, logger)
	indexHandler := application.NewSearchIndexHandler(indexer, logger)
	auditHandler := application.NewAuditLogHandler(logger)

	registry.RegisterHandler(application.TypeSaved, cacheHandler)
	registry.RegisterHandler(application.TypePublished, cacheHandler)
	registry.RegisterHandler(application.TypeUnpublished, cacheHandler)
	registry.RegisterHandler(application.TypeTrashed, cacheHandler)
	registry.RegisterHandler(application.TypeCacheRefreshed, cacheHandler)

	registry.RegisterHandler(application.TypeSaved, indexHandler)
	registry.RegisterHandler(application.TypePublished, indexHandler)
	registry.RegisterHandler(application.TypeUnpublished, indexHandler)
	registry.RegisterHandler(application.TypeTrashed, indexHandler)

	registry.RegisterHandler(application.TypeSaved, auditHandler)
	registry.RegisterHandler(application.TypePublished, auditHandler)
	registry.RegisterHandler(application.TypeUnpublished, auditHandler)
	registry.RegisterHandler(application.TypeTrashed, auditHandler)
	registry.RegisterHandler(application.TypeMoved, auditHandler)
	registry.RegisterHandler(application.TypeCacheRefreshed, auditHandler)

	httpHandler := infrastructure.NewContentHTTPHandler(service)

	return &ContentSlice{
		httpHandler: httpHandler,
	}
}

func (s *ContentSlice) RegisterRoutes(router *chi.Mux) {
	s.httpHandler.RegisterRoutes(router)
}
