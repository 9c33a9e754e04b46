package http

import (
	"context"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
)

type fakeCustomerUC struct {
	customers map[uuid.UUID]*domain.Customer
	saved     []usecase.CustomerFormData
	deleted   []uuid.UUID
}

func newFakeCustomerUC() *fakeCustomerUC {
	return &fakeCustomerUC{customers: make(map[uuid.UUID]*domain.Customer)}
}

func (f *fakeCustomerUC) List(context.Context) ([]domain.Customer, error) {
	res := make([]domain.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		res = append(res, *c)
	}
	return res, nil
}

func (f *fakeCustomerUC) Get(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, e.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerUC) OpenForm(ctx context.Context, id *uuid.UUID) (*usecase.CustomerForm, error) {
	var existing *domain.Customer
	if id != nil {
		c, err := f.Get(ctx, *id)
		if err != nil {
			return nil, err
		}
		existing = c
	}

	form := usecase.NewCustomerForm(usecase.NewCustomerValidator(), func(_ context.Context, data usecase.CustomerFormData) (*domain.Customer, error) {
		f.saved = append(f.saved, data)
		c := existing
		if c == nil {
			c = domain.NewCustomer(uuid.New(), data.Name, data.Email)
		}
		c.Name, c.Email = data.Name, data.Email
		f.customers[c.ID] = c
		return c, nil
	}, logger.Nop())
	form.Open(existing)

	return form, nil
}

func (f *fakeCustomerUC) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductUC struct {
	saved    []*usecase.SaveProductReq
	category string
	deletes  []bool
	err      error
}

func (f *fakeProductUC) List(_ context.Context, category string) ([]domain.Product, error) {
	f.category = category
	return []domain.Product{*domain.NewProduct(uuid.New(), "Beratung", usecase.DefaultTaxRate, usecase.DefaultTaxRate, "Dienstleistungen")}, nil
}

func (f *fakeProductUC) Save(_ context.Context, req *usecase.SaveProductReq) (*domain.Product, error) {
	f.saved = append(f.saved, req)
	if f.err != nil {
		return nil, f.err
	}
	rate := usecase.DefaultTaxRate
	if req.TaxRate != nil {
		rate = *req.TaxRate
	}
	p := domain.NewProduct(uuid.New(), req.Name, *req.Price, rate, req.Category)
	p.IsActive = req.IsActive
	return p, nil
}

func (f *fakeProductUC) Delete(_ context.Context, _ uuid.UUID, confirmed bool) error {
	f.deletes = append(f.deletes, confirmed)
	if !confirmed {
		return e.ErrDeleteNotConfirmed
	}
	return nil
}

type fakeCategoryUC struct {
	categories domain.Categories
	deleted    []string
}

func (f *fakeCategoryUC) List(context.Context) (domain.Categories, error) {
	return f.categories, nil
}

func (f *fakeCategoryUC) Add(_ context.Context, name string) (domain.Categories, error) {
	if f.categories.Contains(name) {
		return nil, e.ErrCategoryExists
	}
	f.categories = append(f.categories, name)
	return f.categories, nil
}

func (f *fakeCategoryUC) Delete(_ context.Context, name string) (domain.Categories, error) {
	f.deleted = append(f.deleted, name)
	f.categories = f.categories.Without(name)
	return f.categories, nil
}

type fakeInvoiceUC struct {
	created []*usecase.CreateInvoiceReq
	doc     *usecase.InvoiceDocument
}

func (f *fakeInvoiceUC) Create(_ context.Context, req *usecase.CreateInvoiceReq) (*domain.Invoice, error) {
	f.created = append(f.created, req)
	return &domain.Invoice{
		ID:        uuid.New(),
		Number:    req.Number,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Total:     req.Total,
		Status:    domain.InvoiceDraft,
		Currency:  domain.DefaultCurrency,
	}, nil
}

func (f *fakeInvoiceUC) List(context.Context) ([]domain.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceUC) Get(context.Context, uuid.UUID) (*domain.Invoice, error) {
	return nil, e.ErrInvoiceNotFound
}

func (f *fakeInvoiceUC) RenderDocument(context.Context, uuid.UUID) (*usecase.InvoiceDocument, error) {
	if f.doc == nil {
		return nil, e.ErrInvoiceNotFound
	}
	return f.doc, nil
}
