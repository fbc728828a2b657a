package domain

import (
	"context"
	"time"
)

// MediaAsset representa um arquivo de mídia do acervo.
type MediaAsset struct {
	ID         string
	FileName   string
	MimeType   string
	SizeBytes  int64
	UploadedAt time.Time
}

// MediaRepository define a interface para o repositório de mídias.
type MediaRepository interface {
	Save(ctx context.Context, asset MediaAsset) error
	FindByID(ctx context.Context, id string) (MediaAsset, error)
	Update(ctx context.Context, asset MediaAsset) error
}
