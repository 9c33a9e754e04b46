package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/google/uuid"
)

type fakeTx struct {
	calls int
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeResolver struct {
	actor *domain.Actor
	err   error
	calls int
}

func (f *fakeResolver) Resolve(context.Context) (*domain.Actor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.actor, nil
}

func newActor() *domain.Actor {
	return domain.NewActor(uuid.New(), uuid.New())
}

type fakeOutbox struct {
	mu     sync.Mutex
	events []*OutboxEvent
	err    error
}

func (f *fakeOutbox) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutbox) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkAsProcessed(context.Context, int64) error { return nil }

func (f *fakeOutbox) ReturnToPending(context.Context, int64) error { return nil }

func (f *fakeOutbox) ReclaimStale(context.Context, int) (int64, error) { return 0, nil }

type fakeCustomerRepo struct {
	items   map[uuid.UUID]domain.Customer
	err     error
	created int
	updated int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: make(map[uuid.UUID]domain.Customer)}
}

func (f *fakeCustomerRepo) List(_ context.Context, vendorID uuid.UUID) ([]domain.Customer, error) {
	var out []domain.Customer
	for _, c := range f.items {
		if c.VendorID == vendorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Get(_ context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Customer, error) {
	c, ok := f.items[id]
	if !ok || c.VendorID != vendorID {
		return nil, e.ErrCustomerNotFound
	}
	return &c, nil
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	f.created++
	if f.err != nil {
		return nil, f.err
	}
	f.items[c.ID] = *c
	return c, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	f.updated++
	if f.err != nil {
		return nil, f.err
	}
	f.items[c.ID] = *c
	return c, nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, vendorID uuid.UUID, id uuid.UUID) error {
	c, ok := f.items[id]
	if !ok || c.VendorID != vendorID {
		return e.ErrCustomerNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeProductRepo struct {
	items   map[uuid.UUID]domain.Product
	calls   int
	deleted []uuid.UUID
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	f := &fakeProductRepo{items: make(map[uuid.UUID]domain.Product)}
	for _, p := range products {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) List(_ context.Context, vendorID uuid.UUID) ([]domain.Product, error) {
	f.calls++
	var out []domain.Product
	for _, p := range f.items {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Get(_ context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Product, error) {
	f.calls++
	p, ok := f.items[id]
	if !ok || p.VendorID != vendorID {
		return nil, e.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.calls++
	f.items[p.ID] = *p
	return p, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.calls++
	f.items[p.ID] = *p
	return p, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, vendorID uuid.UUID, id uuid.UUID) error {
	f.calls++
	p, ok := f.items[id]
	if !ok || p.VendorID != vendorID {
		return e.ErrProductNotFound
	}
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeWritableChecker struct {
	err   error
	calls int
}

func (f *fakeWritableChecker) CheckWritable(context.Context) error {
	f.calls++
	return f.err
}

type fakeCategoryStore struct {
	lists  map[uuid.UUID]domain.Categories
	writes int
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{lists: make(map[uuid.UUID]domain.Categories)}
}

func (f *fakeCategoryStore) Load(_ context.Context, vendorID uuid.UUID) (domain.Categories, bool, error) {
	list, ok := f.lists[vendorID]
	return list, ok, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, vendorID uuid.UUID, fn CategoryUpdateFunc) (domain.Categories, error) {
	current, ok := f.lists[vendorID]
	updated, err := fn(append(domain.Categories(nil), current...), ok)
	if err != nil {
		return nil, err
	}
	f.lists[vendorID] = updated
	f.writes++
	return updated, nil
}

type fakeInvoiceRepo struct {
	id       uuid.UUID
	err      error
	inserts  []domain.Invoice
	invoices map[uuid.UUID]domain.Invoice
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) (uuid.UUID, error) {
	f.inserts = append(f.inserts, *invoice)
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.id, nil
}

func (f *fakeInvoiceRepo) List(_ context.Context, vendorID uuid.UUID) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range f.invoices {
		if inv.VendorID == vendorID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Get(_ context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok || inv.VendorID != vendorID {
		return nil, e.ErrInvoiceNotFound
	}
	return &inv, nil
}

type itemBatch struct {
	invoiceID uuid.UUID
	createdBy uuid.UUID
	items     []domain.InvoiceItem
}

type fakeItemRepo struct {
	batches []itemBatch
	err     error
	stored  map[uuid.UUID][]domain.InvoiceItem
}

func (f *fakeItemRepo) CreateBatch(_ context.Context, invoiceID uuid.UUID, createdBy uuid.UUID, items []domain.InvoiceItem) error {
	f.batches = append(f.batches, itemBatch{invoiceID: invoiceID, createdBy: createdBy, items: items})
	return f.err
}

func (f *fakeItemRepo) ListByInvoice(_ context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	return f.stored[invoiceID], nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(*domain.Invoice) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

type fakeDocuments struct {
	keys []string
	err  error
}

func (f *fakeDocuments) Upload(_ context.Context, doc *domain.Document) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, doc.ObjectKey)
	return doc.ObjectKey, nil
}

type fakeProfiles struct {
	vendors map[uuid.UUID]uuid.UUID
	calls   int
}

func (f *fakeProfiles) GetVendorID(_ context.Context, userID uuid.UUID) (uuid.UUID, error) {
	f.calls++
	v, ok := f.vendors[userID]
	if !ok {
		return uuid.Nil, e.ErrNoVendor
	}
	return v, nil
}

type fakeTenantCache struct {
	vendors map[uuid.UUID]uuid.UUID
	getErr  error
	sets    int
}

func (f *fakeTenantCache) GetVendorID(_ context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	if f.getErr != nil {
		return uuid.Nil, false, f.getErr
	}
	v, ok := f.vendors[userID]
	return v, ok, nil
}

func (f *fakeTenantCache) SetVendorID(_ context.Context, userID uuid.UUID, vendorID uuid.UUID) error {
	f.sets++
	f.vendors[userID] = vendorID
	return nil
}
