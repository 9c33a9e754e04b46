package usecase

import (
	"context"

	"github.com/DRSN-tech/billing-backend/internal/domain"
)

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type InvoiceRenderer interface {
	Render(invoice *domain.Invoice) ([]byte, error)
}

// TxManager выполняет fn в одной транзакции БД.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ActorResolver определяет пользователя запроса и его арендатора.
type ActorResolver interface {
	Resolve(ctx context.Context) (*domain.Actor, error)
}
