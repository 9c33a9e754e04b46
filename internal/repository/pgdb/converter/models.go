package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID            uuid.UUID  `db:"id"`
	VendorID      uuid.UUID  `db:"vendor_id"`
	Name          string     `db:"name"`
	ContactPerson *string    `db:"contact_person"`
	ContactGender *string    `db:"contact_gender"`
	Email         string     `db:"email"`
	Phone         *string    `db:"phone"`
	Address       *string    `db:"address"`
	TaxNumber     *string    `db:"tax_number"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          uuid.UUID       `db:"id"`
	VendorID    uuid.UUID       `db:"vendor_id"`
	Name        string          `db:"name"`
	Description *string         `db:"description"`
	Price       decimal.Decimal `db:"price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	ImageURL    *string         `db:"image_url"`
	Category    string          `db:"category"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at"`
}

// InvoiceModel представляет запись таблицы invoices в PostgreSQL.
type InvoiceModel struct {
	ID            uuid.UUID       `db:"id"`
	InvoiceNo     string          `db:"invoice_no"`
	CustomerName  string          `db:"customer_name"`
	CustomerEmail string          `db:"customer_email"`
	VendorID      uuid.UUID       `db:"vendor_id"`
	CreatedBy     uuid.UUID       `db:"created_by"`
	IssueDate     time.Time       `db:"issue_date"`
	DueDate       time.Time       `db:"due_date"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TaxTotal      decimal.Decimal `db:"tax_total"`
	Total         decimal.Decimal `db:"total"`
	Status        string          `db:"status"`
	Notes         string          `db:"notes"`
	Currency      string          `db:"currency"`
	CreatedAt     time.Time       `db:"created_at"`
}

// InvoiceItemModel представляет запись таблицы invoice_items в PostgreSQL.
type InvoiceItemModel struct {
	ID          uuid.UUID       `db:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"qty"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	LineTotal   decimal.Decimal `db:"line_total"`
	CreatedBy   uuid.UUID       `db:"created_by"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID uuid.UUID  `db:"aggregate_id"`
	VendorID    uuid.UUID  `db:"vendor_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
