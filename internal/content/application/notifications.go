package application

import (
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

// Tipos de notificação do módulo de conteúdo.
const (
	TypeSaved          = pkgDomain.Type("content.saved")
	TypePublished      = pkgDomain.Type("content.published")
	TypeUnpublished    = pkgDomain.Type("content.unpublished")
	TypeTrashed        = pkgDomain.Type("content.trashed")
	TypeMoved          = pkgDomain.Type("content.moved")
	TypeCacheRefreshed = pkgDomain.Type("content.cache_refreshed")
)

// RegisterEventTypes declara os tipos do módulo e suas relações de
// supersessão no builder do host, antes da primeira consulta ao grafo.
func RegisterEventTypes(gb *pkgDomain.GraphBuilder) {
	gb.RegisterEventType(TypeCacheRefreshed)
	gb.RegisterEventType(TypeMoved)
	gb.RegisterEventType(TypeSaved, TypeCacheRefreshed)
	gb.RegisterEventType(TypePublished, TypeSaved)
	gb.RegisterEventType(TypeUnpublished, TypeSaved)
	gb.RegisterEventType(TypeTrashed, TypeMoved)
	// O descarte também cobre o refresh de cache dos documentos afetados.
	gb.RegisterEventType(TypeTrashed, TypeCacheRefreshed)
}

// contentNotification é uma implementação privada de notificação do módulo.
type contentNotification struct {
	name  pkgDomain.Type
	scope pkgDomain.Scope
}

func (n contentNotification) NotificationName() pkgDomain.Type {
	return n.name
}

func (n contentNotification) AffectedEntities() pkgDomain.Scope {
	return n.scope
}

// NewSavedNotification cria a notificação de documentos salvos.
func NewSavedNotification(ids ...string) pkgDomain.Notification {
	return contentNotification{name: TypeSaved, scope: pkgDomain.Entities(ids...)}
}

// NewPublishedNotification cria a notificação de documentos publicados.
func NewPublishedNotification(ids ...string) pkgDomain.Notification {
	return contentNotification{name: TypePublished, scope: pkgDomain.Entities(ids...)}
}

// NewPublishedAllNotification cria a notificação de publicação de todo o acervo.
func NewPublishedAllNotification() pkgDomain.Notification {
	return contentNotification{name: TypePublished, scope: pkgDomain.AllEntities()}
}

// NewUnpublishedNotification cria a notificação de documentos despublicados.
func NewUnpublishedNotification(ids ...string) pkgDomain.Notification {
	return contentNotification{name: TypeUnpublished, scope: pkgDomain.Entities(ids...)}
}

// NewTrashedNotification cria a notificação de documentos descartados.
func NewTrashedNotification(ids ...string) pkgDomain.Notification {
	return contentNotification{name: TypeTrashed, scope: pkgDomain.Entities(ids...)}
}

// NewMovedNotification cria a notificação de documentos movidos de pasta.
func NewMovedNotification(ids ...string) pkgDomain.Notification {
	return contentNotification{name: TypeMoved, scope: pkgDomain.Entities(ids...)}
}

// NewCacheRefreshedNotification cria a notificação de refresh de cache.
func NewCacheRefreshedNotification(ids ...string) pkgDomain.Notification {
	return contentNotification{name: TypeCacheRefreshed, scope: pkgDomain.Entities(ids...)}
}

// NewCacheRefreshedAllNotification cria a notificação de refresh do cache inteiro.
func NewCacheRefreshedAllNotification() pkgDomain.Notification {
	return contentNotification{name: TypeCacheRefreshed, scope: pkgDomain.AllEntities()}
}
