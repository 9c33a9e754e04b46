package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency — валюта всех счетов
const DefaultCurrency = "CHF"

// InvoiceStatus описывает состояние счёта
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice описывает счёт. Суммы рассчитывает вызывающая сторона, хранилище их не пересчитывает.
type Invoice struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	CreatedBy     uuid.UUID
	Number        string
	CustomerName  string
	CustomerEmail string
	IssueDate     time.Time
	DueDate       time.Time
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	Status        InvoiceStatus
	Notes         string
	Currency      string
	Items         []InvoiceItem
	CreatedAt     time.Time
}

// InvoiceItem — одна позиция счёта
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	CreatedBy   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	LineTotal   decimal.Decimal
}
