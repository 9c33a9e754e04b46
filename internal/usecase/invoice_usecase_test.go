package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceFixture struct {
	act      *domain.Actor
	resolver *fakeResolver
	invoices *fakeInvoiceRepo
	items    *fakeItemRepo
	outbox   *fakeOutbox
	renderer *fakeRenderer
	docs     *fakeDocuments
	uc       *InvoiceUseCase
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{
		act:      newActor(),
		invoices: &fakeInvoiceRepo{id: uuid.New(), invoices: map[uuid.UUID]domain.Invoice{}},
		items:    &fakeItemRepo{stored: map[uuid.UUID][]domain.InvoiceItem{}},
		outbox:   &fakeOutbox{},
		renderer: &fakeRenderer{},
		docs:     &fakeDocuments{},
	}
	f.resolver = &fakeResolver{actor: f.act}
	f.uc = NewInvoiceUC(f.invoices, f.items, f.resolver, &fakeTx{}, f.outbox, f.renderer, f.docs, logger.Nop())
	return f
}

func invoiceReq(items int) *CreateInvoiceReq {
	req := &CreateInvoiceReq{
		Number:        "2026-0042",
		CustomerName:  "Muster AG",
		CustomerEmail: "info@muster.ch",
		IssueDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		Subtotal:      decimal.NewFromInt(100),
		TaxTotal:      decimal.RequireFromString("8.1"),
		Total:         decimal.RequireFromString("108.1"),
		Status:        domain.InvoiceSent,
	}
	for i := 0; i < items; i++ {
		req.Items = append(req.Items, CreateInvoiceItemReq{
			Description: fmt.Sprintf("Position %d", i+1),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(10),
			TaxRate:     decPtr("8.1"),
			Total:       decimal.NewFromInt(10),
		})
	}
	return req
}

func TestInvoiceCreateSingleBatch(t *testing.T) {
	f := newInvoiceFixture()

	invoice, err := f.uc.Create(context.Background(), invoiceReq(3))
	require.NoError(t, err)

	require.Len(t, f.invoices.inserts, 1)
	inserted := f.invoices.inserts[0]
	assert.Equal(t, f.act.VendorID, inserted.VendorID)
	assert.Equal(t, f.act.UserID, inserted.CreatedBy)
	assert.Equal(t, "CHF", inserted.Currency)
	assert.True(t, inserted.Total.Equal(decimal.RequireFromString("108.1")))

	require.Len(t, f.items.batches, 1)
	batch := f.items.batches[0]
	assert.Equal(t, f.invoices.id, batch.invoiceID)
	assert.Equal(t, f.act.UserID, batch.createdBy)
	require.Len(t, batch.items, 3)
	for _, item := range batch.items {
		assert.Equal(t, f.invoices.id, item.InvoiceID)
	}

	assert.Equal(t, f.invoices.id, invoice.ID)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, InvoiceCreated, f.outbox.events[0].EventType)
}

func TestInvoiceCreateWithoutItems(t *testing.T) {
	f := newInvoiceFixture()

	_, err := f.uc.Create(context.Background(), invoiceReq(0))
	require.NoError(t, err)
	assert.Len(t, f.invoices.inserts, 1)
	assert.Empty(t, f.items.batches)
}

func TestInvoiceCreateMissingTaxRateIsZero(t *testing.T) {
	f := newInvoiceFixture()
	req := invoiceReq(1)
	req.Items[0].TaxRate = nil
	req.Status = ""

	invoice, err := f.uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, f.items.batches[0].items[0].TaxRate.IsZero())
	assert.Equal(t, domain.InvoiceDraft, invoice.Status)
}

func TestInvoiceCreateActorErrors(t *testing.T) {
	for _, cause := range []error{e.ErrNotAuthenticated, e.ErrNoVendor} {
		t.Run(cause.Error(), func(t *testing.T) {
			f := newInvoiceFixture()
			f.resolver.err = cause

			_, err := f.uc.Create(context.Background(), invoiceReq(2))
			assert.ErrorIs(t, err, cause)
			assert.Empty(t, f.invoices.inserts)
			assert.Empty(t, f.items.batches)
		})
	}
}

func TestInvoiceCreateStorageErrors(t *testing.T) {
	t.Run("invoice insert", func(t *testing.T) {
		f := newInvoiceFixture()
		f.invoices.err = errors.New("connection reset")

		_, err := f.uc.Create(context.Background(), invoiceReq(2))
		assert.ErrorIs(t, err, e.ErrInvoiceNotCreated)
		assert.Empty(t, f.items.batches)
		assert.Empty(t, f.outbox.events)
	})

	t.Run("items insert", func(t *testing.T) {
		f := newInvoiceFixture()
		f.items.err = errors.New("check violation")

		_, err := f.uc.Create(context.Background(), invoiceReq(2))
		assert.ErrorIs(t, err, e.ErrInvoiceItemsNotCreated)
		assert.Empty(t, f.outbox.events)
	})

	t.Run("nil request", func(t *testing.T) {
		f := newInvoiceFixture()

		_, err := f.uc.Create(context.Background(), nil)
		assert.ErrorIs(t, err, e.ErrInvoiceRequired)
		assert.Zero(t, f.resolver.calls)
	})
}

func TestInvoiceRenderDocument(t *testing.T) {
	f := newInvoiceFixture()
	id := uuid.New()
	f.invoices.invoices[id] = domain.Invoice{ID: id, VendorID: f.act.VendorID, Number: "2026/0042"}
	f.items.stored[id] = []domain.InvoiceItem{{Description: "Beratung"}}

	doc, err := f.uc.RenderDocument(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "2026_0042.pdf", doc.FileName)
	assert.Equal(t, fmt.Sprintf("invoices/%s/2026_0042.pdf", f.act.VendorID), doc.ArchiveKey)
	assert.Equal(t, []string{doc.ArchiveKey}, f.docs.keys)
	assert.NotEmpty(t, doc.Data)
}

func TestInvoiceRenderDocumentArchiveFailure(t *testing.T) {
	f := newInvoiceFixture()
	id := uuid.New()
	f.invoices.invoices[id] = domain.Invoice{ID: id, VendorID: f.act.VendorID, Number: "1"}
	f.docs.err = errors.New("bucket missing")

	doc, err := f.uc.RenderDocument(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, doc.ArchiveKey)
	assert.NotEmpty(t, doc.Data)
}

func TestInvoiceGetForeignVendor(t *testing.T) {
	f := newInvoiceFixture()
	id := uuid.New()
	f.invoices.invoices[id] = domain.Invoice{ID: id, VendorID: uuid.New()}

	_, err := f.uc.Get(context.Background(), id)
	assert.ErrorIs(t, err, e.ErrInvoiceNotFound)
}
