package minio

import (
	"context"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/jitter"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
)

// DocumentArchiver загружает документы в MinIO с повторами и ограничением по времени.
type DocumentArchiver struct {
	repo     usecase.DocumentRepository
	logger   logger.Logger
	attempts int
	timeout  time.Duration
	base     time.Duration
}

func NewDocumentArchiver(repo usecase.DocumentRepository, logger logger.Logger) *DocumentArchiver {
	return &DocumentArchiver{
		repo:     repo,
		logger:   logger,
		attempts: 3,
		timeout:  15 * time.Second,
		base:     200 * time.Millisecond,
	}
}

// Upload повторяет загрузку с экспоненциальной задержкой и jitter.
func (a *DocumentArchiver) Upload(ctx context.Context, doc *domain.Document) (string, error) {
	const op = "DocumentArchiver.Upload"

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < a.attempts; attempt++ {
		key, err := a.repo.Upload(ctx, doc)
		if err == nil {
			return key, nil
		}
		lastErr = err

		if attempt == a.attempts-1 {
			break
		}

		delay := jitter.ExponentialBackoff(a.base, 2*time.Second, attempt, jitter.DefaultJitter)
		a.logger.Debugf("%s: attempt %d for %s failed, retrying in %s", op, attempt+1, doc.ObjectKey, delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", e.Wrap(op, ctx.Err())
		}
	}

	return "", e.Wrap(op, lastErr)
}
