package infrastructure

import (
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mateusmacedo/go-eventing/internal/content/domain"
	"github.com/mateusmacedo/go-eventing/pkg/application"
)

type gormDocumentRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormDocumentRepository(dsn string, logger application.AppLogger) (domain.DocumentRepository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&domain.Document{}); err != nil {
		return nil, err
	}

	return &gormDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocumentRepository) Save(ctx context.Context, document domain.Document) error {
	if err := r.db.WithContext(ctx).Create(&document).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save document", err, map[string]interface{}{
			"document": document,
		})
		return err
	}

	application.LogInfo(ctx, r.logger, "document saved", map[string]interface{}{
		"document": document,
	})
	return nil
}

func (r *gormDocumentRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	var document domain.Document

	if err := r.db.WithContext(ctx).First(&document, "id = ?", id).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to find document", err, map[string]interface{}{
			"id": id,
		})
		return domain.Document{}, err
	}

	return document, nil
}

func (r *gormDocumentRepository) FindByFolder(ctx context.Context, folder string) ([]domain.Document, error) {
	var documents []domain.Document

	if err := r.db.WithContext(ctx).Where("folder = ?", folder).Find(&documents).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to find documents", err, map[string]interface{}{
			"folder": folder,
		})
		return nil, err
	}

	application.LogInfo(ctx, r.logger, "documents found", map[string]interface{}{
		"folder": folder,
		"count":  len(documents),
	})

	return documents, nil
}

func (r *gormDocumentRepository) Update(ctx context.Context, document domain.Document) error {
	if err := r.db.WithContext(ctx).Save(&document).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to update document", err, map[string]interface{}{
			"document": document,
		})
		return err
	}

	application.LogInfo(ctx, r.logger, "document updated", map[string]interface{}{
		"document": document,
	})

	return nil
}
