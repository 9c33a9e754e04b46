package http

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// NumberInput принимает число как JSON-число или строку ("12.50").
type NumberInput string

func (n *NumberInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberInput(s)
		return nil
	}

	*n = NumberInput(data)
	return nil
}

// CUSTOMERS

type CustomerRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	ContactGender *string `json:"contactGender"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	TaxNumber     *string `json:"taxNumber"`
}

func (c *CustomerRequest) toFormInput() usecase.CustomerFormInput {
	return usecase.CustomerFormInput{
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		ContactGender: c.ContactGender,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		TaxNumber:     c.TaxNumber,
	}
}

type CustomerResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	ContactPerson *string    `json:"contactPerson"`
	ContactGender *string    `json:"contactGender"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone"`
	Address       *string    `json:"address"`
	TaxNumber     *string    `json:"taxNumber"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func toCustomerResponse(c *domain.Customer) CustomerResponse {
	var gender *string
	if c.ContactGender != nil {
		g := string(*c.ContactGender)
		gender = &g
	}

	return CustomerResponse{
		ID:            c.ID,
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

// PRODUCTS

type ProductRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       NumberInput  `json:"price"`
	TaxRate     *NumberInput `json:"taxRate"`
	ImageURL    string       `json:"imageUrl"`
	Category    string       `json:"category"`
	IsActive    *bool        `json:"isActive"`
}

// toSaveReq переводит тело запроса в значения диалога. Для нового продукта
// пропущенная ставка НДС равна 8.1, при редактировании сохраняется текущая.
// Пропущенный isActive означает true.
func (p *ProductRequest) toSaveReq(id *uuid.UUID) (*usecase.SaveProductReq, error) {
	req := &usecase.SaveProductReq{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       parseDecimal(string(p.Price)),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		IsActive:    true,
	}

	switch {
	case p.TaxRate != nil:
		req.TaxRate = parseDecimal(string(*p.TaxRate))
		if req.TaxRate == nil {
			return nil, e.ErrInvalidTaxRate
		}
	case id == nil:
		rate := usecase.DefaultTaxRate
		req.TaxRate = &rate
	}

	if p.IsActive != nil {
		req.IsActive = *p.IsActive
	}

	return req, nil
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CATEGORIES

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// INVOICES

type InvoiceItemRequest struct {
	Description string       `json:"description"`
	Quantity    NumberInput  `json:"quantity"`
	UnitPrice   NumberInput  `json:"unitPrice"`
	TaxRate     *NumberInput `json:"taxRate"`
	Total       NumberInput  `json:"total"`
}

type InvoiceRequest struct {
	Number        string               `json:"number"`
	CustomerName  string               `json:"customerName"`
	CustomerEmail string               `json:"customerEmail"`
	IssueDate     string               `json:"issueDate"`
	DueDate       string               `json:"dueDate"`
	Subtotal      NumberInput          `json:"subtotal"`
	TaxTotal      NumberInput          `json:"taxTotal"`
	Total         NumberInput          `json:"total"`
	Status        string               `json:"status"`
	Notes         *string              `json:"notes"`
	Items         []InvoiceItemRequest `json:"items"`
}

// toCreateReq разбирает даты и суммы. Суммы принимаются как есть, без пересчёта.
func (i *InvoiceRequest) toCreateReq() (*usecase.CreateInvoiceReq, error) {
	fields := make(map[string]string)

	issueDate, err := time.Parse(dateLayout, i.IssueDate)
	if err != nil {
		fields["issueDate"] = "must be a date in YYYY-MM-DD format"
	}
	dueDate, err := time.Parse(dateLayout, i.DueDate)
	if err != nil {
		fields["dueDate"] = "must be a date in YYYY-MM-DD format"
	}

	amount := func(v NumberInput, field string) decimal.Decimal {
		d, err := parseAmount(string(v), field)
		if err != nil {
			fields[field] = "must be a valid number"
		}
		return d
	}

	req := &usecase.CreateInvoiceReq{
		Number:        i.Number,
		CustomerName:  i.CustomerName,
		CustomerEmail: i.CustomerEmail,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Subtotal:      amount(i.Subtotal, "subtotal"),
		TaxTotal:      amount(i.TaxTotal, "taxTotal"),
		Total:         amount(i.Total, "total"),
		Status:        domain.InvoiceStatus(i.Status),
		Items:         make([]usecase.CreateInvoiceItemReq, 0, len(i.Items)),
	}
	if i.Notes != nil {
		req.Notes = *i.Notes
	}

	for k, item := range i.Items {
		prefix := "items[" + strconv.Itoa(k) + "]."
		it := usecase.CreateInvoiceItemReq{
			Description: item.Description,
			Quantity:    amount(item.Quantity, prefix+"quantity"),
			UnitPrice:   amount(item.UnitPrice, prefix+"unitPrice"),
			Total:       amount(item.Total, prefix+"total"),
		}
		if item.TaxRate != nil {
			it.TaxRate = parseDecimal(string(*item.TaxRate))
			if it.TaxRate == nil {
				fields[prefix+"taxRate"] = "must be a valid number"
			}
		}
		req.Items = append(req.Items, it)
	}

	if len(fields) > 0 {
		return nil, e.NewValidationError(fields)
	}

	return req, nil
}

type InvoiceItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Total       decimal.Decimal `json:"total"`
}

type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	Number        string                `json:"number"`
	CustomerName  string                `json:"customerName"`
	CustomerEmail string                `json:"customerEmail"`
	IssueDate     string                `json:"issueDate"`
	DueDate       string                `json:"dueDate"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxTotal      decimal.Decimal       `json:"taxTotal"`
	Total         decimal.Decimal       `json:"total"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes"`
	Currency      string                `json:"currency"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
}

func toInvoiceResponse(i *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            i.ID,
		Number:        i.Number,
		CustomerName:  i.CustomerName,
		CustomerEmail: i.CustomerEmail,
		IssueDate:     i.IssueDate.Format(dateLayout),
		DueDate:       i.DueDate.Format(dateLayout),
		Subtotal:      i.Subtotal,
		TaxTotal:      i.TaxTotal,
		Total:         i.Total,
		Status:        string(i.Status),
		Notes:         i.Notes,
		Currency:      i.Currency,
	}

	for _, item := range i.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Total:       item.LineTotal,
		})
	}

	return resp
}
