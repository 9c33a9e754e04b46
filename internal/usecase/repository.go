package usecase

import (
	"context"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/google/uuid"
)

type CustomerRepository interface {
	List(ctx context.Context, vendorID uuid.UUID) ([]domain.Customer, error)
	Get(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) error
}

type ProductRepository interface {
	List(ctx context.Context, vendorID uuid.UUID) ([]domain.Product, error)
	Get(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) error
}

type InvoiceRepository interface {
	// Create вставляет строку счёта и возвращает идентификатор, присвоенный хранилищем.
	Create(ctx context.Context, invoice *domain.Invoice) (uuid.UUID, error)
	List(ctx context.Context, vendorID uuid.UUID) ([]domain.Invoice, error)
	Get(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Invoice, error)
}

type InvoiceItemRepository interface {
	// CreateBatch вставляет все позиции одним запросом.
	CreateBatch(ctx context.Context, invoiceID uuid.UUID, createdBy uuid.UUID, items []domain.InvoiceItem) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error)
}

type UserProfileRepository interface {
	// GetVendorID возвращает e.ErrNoVendor, если у пользователя нет арендатора.
	GetVendorID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type TenantCacheRepository interface {
	GetVendorID(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
	SetVendorID(ctx context.Context, userID uuid.UUID, vendorID uuid.UUID) error
}

// CategoryUpdateFunc получает текущий список (found=false, если он ещё не сохранён)
// и возвращает новый. Ошибка отменяет запись.
type CategoryUpdateFunc func(current domain.Categories, found bool) (domain.Categories, error)

type CategoryStore interface {
	Load(ctx context.Context, vendorID uuid.UUID) (domain.Categories, bool, error)
	Update(ctx context.Context, vendorID uuid.UUID, fn CategoryUpdateFunc) (domain.Categories, error)
}

// WritableChecker проверяет, что key/value хранилище доступно на запись.
type WritableChecker interface {
	CheckWritable(ctx context.Context) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	ReturnToPending(ctx context.Context, id int64) error
	// ReclaimStale возвращает в очередь события, зависшие в processing.
	ReclaimStale(ctx context.Context, olderThanSec int) (int64, error)
}

type DocumentRepository interface {
	Upload(ctx context.Context, doc *domain.Document) (string, error)
}
