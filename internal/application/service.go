package application

import (
	"context"
	"time"

	"github.com/mateusmacedo/go-eventing/internal/domain"
	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

// UploadMediaData contém os dados necessários para subir uma mídia.
type UploadMediaData struct {
	FileName  string
	MimeType  string
	SizeBytes int64
}

// MediaService executa as operações do acervo de mídia, cada uma com sua
// própria unidade de trabalho.
type MediaService struct {
	repository  domain.MediaRepository
	uowFactory  pkgApp.UnitOfWorkFactory
	idGenerator pkgDomain.IDGenerator[string]
	logger      pkgApp.AppLogger
}

// NewMediaService cria o serviço de mídia.
func NewMediaService(
	repository domain.MediaRepository,
	uowFactory pkgApp.UnitOfWorkFactory,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *MediaService {
	return &MediaService{
		repository:  repository,
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// Upload grava uma nova mídia e dispara as notificações da mutação. O refresh
// de cache pedido pela camada de armazenamento é coberto pelo próprio Saved.
func (s *MediaService) Upload(ctx context.Context, data UploadMediaData) (domain.MediaAsset, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, s.logger, "Contexto cancelado", ctx.Err(), nil)
		return domain.MediaAsset{}, ctx.Err()
	}

	uow := s.uowFactory.Begin()
	ctx = pkgApp.WithWorkID(ctx, uow.ID())

	asset := domain.MediaAsset{
		ID:         s.idGenerator(),
		FileName:   data.FileName,
		MimeType:   data.MimeType,
		SizeBytes:  data.SizeBytes,
		UploadedAt: time.Now(),
	}

	if err := s.repository.Save(ctx, asset); err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao salvar mídia", err, map[string]interface{}{"asset": asset})
		return domain.MediaAsset{}, err
	}

	if err := uow.Fire(NewMediaCacheRefreshedNotification(asset.ID)); err != nil {
		return domain.MediaAsset{}, err
	}
	if err := uow.Fire(NewMediaSavedNotification(asset.ID)); err != nil {
		return domain.MediaAsset{}, err
	}

	s.logger.Info(ctx, "Mídia salva", map[string]interface{}{"id": asset.ID})
	return asset, uow.Flush(ctx)
}

// Get retorna uma mídia pelo identificador.
func (s *MediaService) Get(ctx context.Context, id string) (domain.MediaAsset, error) {
	asset, err := s.repository.FindByID(ctx, id)
	if err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao encontrar mídia", err, map[string]interface{}{"id": id})
		return domain.MediaAsset{}, err
	}
	return asset, nil
}
