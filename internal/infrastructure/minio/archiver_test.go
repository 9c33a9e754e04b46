package minio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyRepo struct {
	failures int
	calls    int
}

func (f *flakyRepo) Upload(_ context.Context, doc *domain.Document) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("connection reset")
	}
	return doc.ObjectKey, nil
}

func newTestArchiver(repo *flakyRepo) *DocumentArchiver {
	a := NewDocumentArchiver(repo, logger.Nop())
	a.base = time.Millisecond
	return a
}

func TestDocumentArchiverRetries(t *testing.T) {
	repo := &flakyRepo{failures: 2}

	key, err := newTestArchiver(repo).Upload(context.Background(), domain.NewDocument("invoices/v/1.pdf", []byte("%PDF"), "application/pdf"))
	require.NoError(t, err)
	assert.Equal(t, "invoices/v/1.pdf", key)
	assert.Equal(t, 3, repo.calls)
}

func TestDocumentArchiverGivesUp(t *testing.T) {
	repo := &flakyRepo{failures: 10}

	_, err := newTestArchiver(repo).Upload(context.Background(), domain.NewDocument("k", nil, "application/pdf"))
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, 3, repo.calls)
}
