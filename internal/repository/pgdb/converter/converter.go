package converter

import (
	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
)

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
type CustomerConverter interface {
	ToModel(entity *domain.Customer) *CustomerModel
	ToEntity(model *CustomerModel) *domain.Customer
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// InvoiceConverter преобразует счета и их позиции.
type InvoiceConverter interface {
	ToModel(entity *domain.Invoice) *InvoiceModel
	ToEntity(model *InvoiceModel) *domain.Invoice
	ItemToModel(entity *domain.InvoiceItem) *InvoiceItemModel
	ItemToEntity(model *InvoiceItemModel) *domain.InvoiceItem
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type customerConverter struct{}

func NewCustomerConverter() CustomerConverter { return customerConverter{} }

func (customerConverter) ToModel(c *domain.Customer) *CustomerModel {
	if c == nil {
		return nil
	}

	var gender *string
	if c.ContactGender != nil {
		g := string(*c.ContactGender)
		gender = &g
	}

	return &CustomerModel{
		ID:            c.ID,
		VendorID:      c.VendorID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		ContactGender: gender,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		TaxNumber:     c.TaxNumber,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (customerConverter) ToEntity(m *CustomerModel) *domain.Customer {
	if m == nil {
		return nil
	}

	var gender *domain.Gender
	if m.ContactGender != nil {
		g := domain.Gender(*m.ContactGender)
		gender = &g
	}

	return &domain.Customer{
		ID:            m.ID,
		VendorID:      m.VendorID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		ContactGender: gender,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		TaxNumber:     m.TaxNumber,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type productConverter struct{}

func NewProductConverter() ProductConverter { return productConverter{} }

func (productConverter) ToModel(p *domain.Product) *ProductModel {
	if p == nil {
		return nil
	}

	return &ProductModel{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Description: nullable(p.Description),
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		ImageURL:    nullable(p.ImageURL),
		Category:    p.Category,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (productConverter) ToEntity(m *ProductModel) *domain.Product {
	if m == nil {
		return nil
	}

	return &domain.Product{
		ID:          m.ID,
		VendorID:    m.VendorID,
		Name:        m.Name,
		Description: value(m.Description),
		Price:       m.Price,
		TaxRate:     m.TaxRate,
		ImageURL:    value(m.ImageURL),
		Category:    m.Category,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type invoiceConverter struct{}

func NewInvoiceConverter() InvoiceConverter { return invoiceConverter{} }

func (invoiceConverter) ToModel(i *domain.Invoice) *InvoiceModel {
	if i == nil {
		return nil
	}

	return &InvoiceModel{
		ID:            i.ID,
		InvoiceNo:     i.Number,
		CustomerName:  i.CustomerName,
		CustomerEmail: i.CustomerEmail,
		VendorID:      i.VendorID,
		CreatedBy:     i.CreatedBy,
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		Subtotal:      i.Subtotal,
		TaxTotal:      i.TaxTotal,
		Total:         i.Total,
		Status:        string(i.Status),
		Notes:         i.Notes,
		Currency:      i.Currency,
		CreatedAt:     i.CreatedAt,
	}
}

func (invoiceConverter) ToEntity(m *InvoiceModel) *domain.Invoice {
	if m == nil {
		return nil
	}

	return &domain.Invoice{
		ID:            m.ID,
		VendorID:      m.VendorID,
		CreatedBy:     m.CreatedBy,
		Number:        m.InvoiceNo,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		Subtotal:      m.Subtotal,
		TaxTotal:      m.TaxTotal,
		Total:         m.Total,
		Status:        domain.InvoiceStatus(m.Status),
		Notes:         m.Notes,
		Currency:      m.Currency,
		CreatedAt:     m.CreatedAt,
	}
}

func (invoiceConverter) ItemToModel(i *domain.InvoiceItem) *InvoiceItemModel {
	if i == nil {
		return nil
	}

	return &InvoiceItemModel{
		ID:          i.ID,
		InvoiceID:   i.InvoiceID,
		Description: i.Description,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		TaxRate:     i.TaxRate,
		LineTotal:   i.LineTotal,
		CreatedBy:   i.CreatedBy,
	}
}

func (invoiceConverter) ItemToEntity(m *InvoiceItemModel) *domain.InvoiceItem {
	if m == nil {
		return nil
	}

	return &domain.InvoiceItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		CreatedBy:   m.CreatedBy,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		LineTotal:   m.LineTotal,
	}
}

type outboxEventConverter struct{}

func NewOutboxEventConverter() OutboxEventConverter { return outboxEventConverter{} }

func (outboxEventConverter) ToModel(e *usecase.OutboxEvent) *OutboxEventModel {
	if e == nil {
		return nil
	}

	return &OutboxEventModel{
		ID:          e.ID,
		EventID:     e.EventID,
		EventType:   string(e.EventType),
		AggregateID: e.AggregateID,
		VendorID:    e.VendorID,
		Payload:     e.Payload,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		ProcessedAt: e.ProcessedAt,
	}
}

func (outboxEventConverter) ToEntity(m *OutboxEventModel) *usecase.OutboxEvent {
	if m == nil {
		return nil
	}

	return &usecase.OutboxEvent{
		ID:          m.ID,
		EventID:     m.EventID,
		EventType:   usecase.OutboxEventType(m.EventType),
		AggregateID: m.AggregateID,
		VendorID:    m.VendorID,
		Payload:     m.Payload,
		Status:      usecase.OutboxStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		ProcessedAt: m.ProcessedAt,
	}
}

func (c outboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	if models == nil {
		return nil
	}

	res := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		res = append(res, c.ToEntity(m))
	}
	return res
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
