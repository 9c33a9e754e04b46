package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/billing-backend/internal/cfg"
	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// DocumentRepo хранит PDF-документы счетов в MinIO.
type DocumentRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewDocumentRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *DocumentRepo {
	return &DocumentRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает документ в MinIO и возвращает ключ объекта. Существующий объект перезаписывается.
func (d *DocumentRepo) Upload(ctx context.Context, doc *domain.Document) (string, error) {
	reader := bytes.NewReader(doc.Bytes)

	info, err := d.mc.PutObject(ctx, d.cfg.BucketName, doc.ObjectKey, reader, int64(len(doc.Bytes)), minio.PutObjectOptions{
		ContentType: doc.ContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
