package application

import (
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

// Tipos de notificação do módulo de mídia.
const (
	TypeMediaSaved          = pkgDomain.Type("media.saved")
	TypeMediaCacheRefreshed = pkgDomain.Type("media.cache_refreshed")
)

// RegisterEventTypes declara os tipos do módulo no builder do host.
func RegisterEventTypes(gb *pkgDomain.GraphBuilder) {
	gb.RegisterEventType(TypeMediaCacheRefreshed)
	gb.RegisterEventType(TypeMediaSaved, TypeMediaCacheRefreshed)
}

// mediaNotification é uma implementação privada de notificação do módulo.
type mediaNotification struct {
	name  pkgDomain.Type
	scope pkgDomain.Scope
}

func (n mediaNotification) NotificationName() pkgDomain.Type {
	return n.name
}

func (n mediaNotification) AffectedEntities() pkgDomain.Scope {
	return n.scope
}

// NewMediaSavedNotification cria a notificação de mídias salvas.
func NewMediaSavedNotification(ids ...string) pkgDomain.Notification {
	return mediaNotification{name: TypeMediaSaved, scope: pkgDomain.Entities(ids...)}
}

// NewMediaCacheRefreshedNotification cria a notificação de refresh de cache de mídia.
func NewMediaCacheRefreshedNotification(ids ...string) pkgDomain.Notification {
	return mediaNotification{name: TypeMediaCacheRefreshed, scope: pkgDomain.Entities(ids...)}
}
