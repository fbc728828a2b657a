package application

import (
	"context"
	"time"

	"github.com/mateusmacedo/go-eventing/internal/content/domain"
	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

// SaveDocumentData contém os dados necessários para salvar um documento.
type SaveDocumentData struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Folder string `json:"folder"`
}

// MoveDocumentData contém os dados necessários para mover um documento.
type MoveDocumentData struct {
	Folder string `json:"folder"`
}

// RefreshCacheData contém os dados de um refresh manual de cache.
type RefreshCacheData struct {
	All bool     `json:"all"`
	IDs []string `json:"ids"`
}

// ContentService executa as operações editoriais. Cada operação abre sua
// própria unidade de trabalho, dispara as notificações da mutação e as entrega
// de uma só vez no Flush.
type ContentService struct {
	repository  domain.DocumentRepository
	uowFactory  pkgApp.UnitOfWorkFactory
	idGenerator pkgDomain.IDGenerator[string]
	logger      pkgApp.AppLogger
}

// NewContentService cria o serviço de conteúdo.
func NewContentService(
	repository domain.DocumentRepository,
	uowFactory pkgApp.UnitOfWorkFactory,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *ContentService {
	return &ContentService{
		repository:  repository,
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// Save cria ou atualiza um documento. A camada de armazenamento pede o refresh
// de cache dos documentos tocados; a resolução o suprime quando o próprio
// Saved já cobre as mesmas entidades.
func (s *ContentService) Save(ctx context.Context, data SaveDocumentData) (domain.Document, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, s.logger, "Contexto cancelado", ctx.Err(), nil)
		return domain.Document{}, ctx.Err()
	}

	uow := s.uowFactory.Begin()
	ctx = pkgApp.WithWorkID(ctx, uow.ID())

	document := domain.Document{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Folder:    data.Folder,
		UpdatedAt: time.Now(),
	}

	var err error
	if document.ID == "" {
		document.ID = s.idGenerator()
		err = s.repository.Save(ctx, document)
	} else {
		err = s.repository.Update(ctx, document)
	}
	if err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao salvar documento", err, map[string]interface{}{"document": document})
		return domain.Document{}, err
	}

	if err := uow.Fire(NewCacheRefreshedNotification(document.ID)); err != nil {
		return domain.Document{}, err
	}
	if err := uow.Fire(NewSavedNotification(document.ID)); err != nil {
		return domain.Document{}, err
	}

	s.logger.Info(ctx, "Documento salvo", map[string]interface{}{"id": document.ID})
	return document, uow.Flush(ctx)
}

// Publish marca o documento como publicado. A publicação implica um save, e o
// Published cobre o Saved na resolução.
func (s *ContentService) Publish(ctx context.Context, id string) (domain.Document, error) {
	return s.setPublished(ctx, id, true, NewPublishedNotification(id))
}

// Unpublish retira o documento de publicação.
func (s *ContentService) Unpublish(ctx context.Context, id string) (domain.Document, error) {
	return s.setPublished(ctx, id, false, NewUnpublishedNotification(id))
}

func (s *ContentService) setPublished(ctx context.Context, id string, published bool, notification pkgDomain.Notification) (domain.Document, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, s.logger, "Contexto cancelado", ctx.Err(), nil)
		return domain.Document{}, ctx.Err()
	}

	uow := s.uowFactory.Begin()
	ctx = pkgApp.WithWorkID(ctx, uow.ID())

	document, err := s.repository.FindByID(ctx, id)
	if err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao encontrar documento", err, map[string]interface{}{"id": id})
		return domain.Document{}, err
	}

	document.Published = published
	document.UpdatedAt = time.Now()
	if err := s.repository.Update(ctx, document); err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao atualizar documento", err, map[string]interface{}{"document": document})
		return domain.Document{}, err
	}

	if err := uow.Fire(NewSavedNotification(document.ID)); err != nil {
		return domain.Document{}, err
	}
	if err := uow.Fire(notification); err != nil {
		return domain.Document{}, err
	}

	s.logger.Info(ctx, "Documento atualizado", map[string]interface{}{
		"id":        document.ID,
		"published": document.Published,
	})
	return document, uow.Flush(ctx)
}

// Trash envia o documento para a lixeira. O descarte implica uma troca de
// pasta, e o Trashed cobre o Moved na resolução.
func (s *ContentService) Trash(ctx context.Context, id string) (domain.Document, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, s.logger, "Contexto cancelado", ctx.Err(), nil)
		return domain.Document{}, ctx.Err()
	}

	uow := s.uowFactory.Begin()
	ctx = pkgApp.WithWorkID(ctx, uow.ID())

	document, err := s.repository.FindByID(ctx, id)
	if err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao encontrar documento", err, map[string]interface{}{"id": id})
		return domain.Document{}, err
	}

	document.Trashed = true
	document.Folder = "trash"
	document.UpdatedAt = time.Now()
	if err := s.repository.Update(ctx, document); err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao atualizar documento", err, map[string]interface{}{"document": document})
		return domain.Document{}, err
	}

	if err := uow.Fire(NewMovedNotification(document.ID)); err != nil {
		return domain.Document{}, err
	}
	if err := uow.Fire(NewTrashedNotification(document.ID)); err != nil {
		return domain.Document{}, err
	}

	s.logger.Info(ctx, "Documento descartado", map[string]interface{}{"id": document.ID})
	return document, uow.Flush(ctx)
}

// Move troca a pasta do documento.
func (s *ContentService) Move(ctx context.Context, id string, data MoveDocumentData) (domain.Document, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, s.logger, "Contexto cancelado", ctx.Err(), nil)
		return domain.Document{}, ctx.Err()
	}

	uow := s.uowFactory.Begin()
	ctx = pkgApp.WithWorkID(ctx, uow.ID())

	document, err := s.repository.FindByID(ctx, id)
	if err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao encontrar documento", err, map[string]interface{}{"id": id})
		return domain.Document{}, err
	}

	document.Folder = data.Folder
	document.UpdatedAt = time.Now()
	if err := s.repository.Update(ctx, document); err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao atualizar documento", err, map[string]interface{}{"document": document})
		return domain.Document{}, err
	}

	if err := uow.Fire(NewMovedNotification(document.ID)); err != nil {
		return domain.Document{}, err
	}

	s.logger.Info(ctx, "Documento movido", map[string]interface{}{
		"id":     document.ID,
		"folder": document.Folder,
	})
	return document, uow.Flush(ctx)
}

// RefreshCache dispara um refresh manual de cache, de todo o acervo ou de
// documentos específicos.
func (s *ContentService) RefreshCache(ctx context.Context, data RefreshCacheData) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, s.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	uow := s.uowFactory.Begin()
	ctx = pkgApp.WithWorkID(ctx, uow.ID())

	notification := NewCacheRefreshedNotification(data.IDs...)
	if data.All {
		notification = NewCacheRefreshedAllNotification()
	}
	if err := uow.Fire(notification); err != nil {
		return err
	}

	s.logger.Info(ctx, "Refresh de cache solicitado", map[string]interface{}{
		"all": data.All,
		"ids": data.IDs,
	})
	return uow.Flush(ctx)
}

// Get retorna um documento pelo identificador.
func (s *ContentService) Get(ctx context.Context, id string) (domain.Document, error) {
	document, err := s.repository.FindByID(ctx, id)
	if err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao encontrar documento", err, map[string]interface{}{"id": id})
		return domain.Document{}, err
	}
	return document, nil
}

// ListFolder retorna os documentos de uma pasta.
func (s *ContentService) ListFolder(ctx context.Context, folder string) ([]domain.Document, error) {
	documents, err := s.repository.FindByFolder(ctx, folder)
	if err != nil {
		pkgApp.LogError(ctx, s.logger, "Erro ao listar documentos", err, map[string]interface{}{"folder": folder})
		return nil, err
	}
	return documents, nil
}
