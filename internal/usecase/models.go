package usecase

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// DefaultTaxRate — ставка НДС по умолчанию для нового продукта, %
var DefaultTaxRate = decimal.RequireFromString("8.1")

// SaveProductReq — значения диалога продукта. ID == nil означает создание.
// Price и TaxRate равны nil, если клиент прислал не число.
type SaveProductReq struct {
	ID          *uuid.UUID
	Name        string
	Description string
	Price       *decimal.Decimal
	TaxRate     *decimal.Decimal
	ImageURL    string
	Category    string
	IsActive    bool
}

// INVOICE USECASE

// CreateInvoiceReq — запрос на создание счёта с позициями.
type CreateInvoiceReq struct {
	Number        string
	CustomerName  string
	CustomerEmail string
	IssueDate     time.Time
	DueDate       time.Time
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	Status        domain.InvoiceStatus
	Notes         string
	Items         []CreateInvoiceItemReq
}

type CreateInvoiceItemReq struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     *decimal.Decimal
	Total       decimal.Decimal
}

// InvoiceDocument — отрисованный PDF счёта и ключ объекта в архиве
// (пустой, если архивировать не удалось).
type InvoiceDocument struct {
	FileName   string
	ArchiveKey string
	Data       []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	InvoiceCreated  OutboxEventType = "invoice.created"
	ProductCreated  OutboxEventType = "product.created"
	ProductUpdated  OutboxEventType = "product.updated"
	ProductDeleted  OutboxEventType = "product.deleted"
	CustomerCreated OutboxEventType = "customer.created"
	CustomerUpdated OutboxEventType = "customer.updated"
	CustomerDeleted OutboxEventType = "customer.deleted"
)

// OutboxEvent — событие, записанное в одной транзакции с изменением данных
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	AggregateID uuid.UUID
	VendorID    uuid.UUID
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// eventEnvelope — формат сообщения в Kafka
type eventEnvelope struct {
	EventID     string          `json:"event_id"`
	EventType   OutboxEventType `json:"event_type"`
	AggregateID uuid.UUID       `json:"aggregate_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Data        any             `json:"data"`
}

// INFRASTUCTURE

type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewOutboxEvent(eventType OutboxEventType, aggregateID uuid.UUID, vendorID uuid.UUID, data any) (*OutboxEvent, error) {
	now := time.Now().UTC()
	eventID := uuid.NewString()

	payload, err := json.Marshal(eventEnvelope{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		VendorID:    vendorID,
		OccurredAt:  now,
		Data:        data,
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		VendorID:    vendorID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   now,
	}, nil
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}

func NewInvoiceDocument(fileName string, archiveKey string, data []byte) *InvoiceDocument {
	return &InvoiceDocument{
		FileName:   fileName,
		ArchiveKey: archiveKey,
		Data:       data,
	}
}

// invoiceEventData — полезная нагрузка invoice.created
type invoiceEventData struct {
	Number    string          `json:"number"`
	Customer  string          `json:"customer_name"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	ItemCount int             `json:"item_count"`
	Status    string          `json:"status"`
}

// productEventData — полезная нагрузка product.*
type productEventData struct {
	Name     string          `json:"name,omitempty"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"is_active"`
}

// customerEventData — полезная нагрузка customer.*
type customerEventData struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
