package usecase

import (
	"context"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/google/uuid"
)

type CustomerUC interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	// OpenForm открывает форму клиента: пустую при id == nil, иначе заполненную из записи.
	OpenForm(ctx context.Context, id *uuid.UUID) (*CustomerForm, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductUC interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Save(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID, confirmed bool) error
}

type CategoryUC interface {
	List(ctx context.Context) (domain.Categories, error)
	Add(ctx context.Context, name string) (domain.Categories, error)
	Delete(ctx context.Context, name string) (domain.Categories, error)
}

type InvoiceUC interface {
	Create(ctx context.Context, req *CreateInvoiceReq) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	RenderDocument(ctx context.Context, id uuid.UUID) (*InvoiceDocument, error)
}
