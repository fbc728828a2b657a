package domain

import (
	"context"
	"time"
)

// Document é o conteúdo editorial persistido.
type Document struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"index"`
	Body      string    `json:"body"`
	Folder    string    `json:"folder" gorm:"index"`
	Published bool      `json:"published"`
	Trashed   bool      `json:"trashed"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DocumentRepository interface {
	Save(ctx context.Context, document Document) error

	FindByID(ctx context.Context, id string) (Document, error)
	FindByFolder(ctx context.Context, folder string) ([]Document, error)
	Update(ctx context.Context, document Document) error
}
