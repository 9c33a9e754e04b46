package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// InvoiceUseCase сохраняет счета с позициями и выдаёт их PDF.
type InvoiceUseCase struct {
	invoiceRepo InvoiceRepository
	itemRepo    InvoiceItemRepository
	tenants     ActorResolver
	txm         TxManager
	outbox      OutboxRepository
	renderer    InvoiceRenderer
	documents   DocumentRepository
	logger      logger.Logger
}

func NewInvoiceUC(
	invoiceRepo InvoiceRepository,
	itemRepo InvoiceItemRepository,
	tenants ActorResolver,
	txm TxManager,
	outbox OutboxRepository,
	renderer InvoiceRenderer,
	documents DocumentRepository,
	logger logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		tenants:     tenants,
		txm:         txm,
		outbox:      outbox,
		renderer:    renderer,
		documents:   documents,
		logger:      logger,
	}
}

// Create определяет пользователя и арендатора, вставляет строку счёта, затем одним
// запросом все позиции с присвоенным id счёта. Суммы не пересчитываются.
func (i *InvoiceUseCase) Create(ctx context.Context, req *CreateInvoiceReq) (*domain.Invoice, error) {
	const op = "InvoiceUseCase.Create"

	if req == nil {
		return nil, e.Wrap(op, e.ErrInvoiceRequired)
	}

	act, err := i.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	invoice := newInvoice(act, req)

	err = i.txm.Do(ctx, func(ctx context.Context) error {
		id, err := i.invoiceRepo.Create(ctx, invoice)
		if err != nil {
			i.logger.Errorf(err, "invoice insert error")
			return e.Generic(e.ErrInvoiceNotCreated, err)
		}
		invoice.ID = id

		if len(invoice.Items) > 0 {
			for k := range invoice.Items {
				invoice.Items[k].InvoiceID = id
			}

			if err := i.itemRepo.CreateBatch(ctx, id, act.UserID, invoice.Items); err != nil {
				i.logger.Errorf(err, "invoice items insert error")
				return e.Generic(e.ErrInvoiceItemsNotCreated, err)
			}
		}

		return publishEvent(ctx, i.outbox, InvoiceCreated, id, act.VendorID, invoiceEventData{
			Number:    invoice.Number,
			Customer:  invoice.CustomerName,
			Total:     invoice.Total,
			Currency:  invoice.Currency,
			ItemCount: len(invoice.Items),
			Status:    string(invoice.Status),
		})
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return invoice, nil
}

func (i *InvoiceUseCase) List(ctx context.Context) ([]domain.Invoice, error) {
	const op = "InvoiceUseCase.List"

	act, err := i.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	invoices, err := i.invoiceRepo.List(ctx, act.VendorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return invoices, nil
}

// Get возвращает счёт вместе с позициями.
func (i *InvoiceUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	const op = "InvoiceUseCase.Get"

	act, err := i.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	invoice, err := i.get(ctx, act, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return invoice, nil
}

// RenderDocument отрисовывает PDF счёта и кладёт копию в архив.
// Ошибка архивации не мешает отдать документ.
func (i *InvoiceUseCase) RenderDocument(ctx context.Context, id uuid.UUID) (*InvoiceDocument, error) {
	const (
		op          = "InvoiceUseCase.RenderDocument"
		contentType = "application/pdf"
	)

	act, err := i.tenants.Resolve(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	invoice, err := i.get(ctx, act, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	data, err := i.renderer.Render(invoice)
	if err != nil {
		return nil, e.Wrap(op, e.Generic(e.ErrDocumentNotRendered, err))
	}

	fileName := documentFileName(invoice)
	objectKey := fmt.Sprintf("invoices/%s/%s", act.VendorID, fileName)

	archiveKey, err := i.documents.Upload(ctx, domain.NewDocument(objectKey, data, contentType))
	if err != nil {
		i.logger.Warnf("failed to archive invoice document %s: %v", objectKey, e.Wrap(op, err))
		archiveKey = ""
	}

	return NewInvoiceDocument(fileName, archiveKey, data), nil
}

func (i *InvoiceUseCase) get(ctx context.Context, act *domain.Actor, id uuid.UUID) (*domain.Invoice, error) {
	invoice, err := i.invoiceRepo.Get(ctx, act.VendorID, id)
	if err != nil {
		return nil, err
	}

	items, err := i.itemRepo.ListByInvoice(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items

	return invoice, nil
}

func newInvoice(act *domain.Actor, req *CreateInvoiceReq) *domain.Invoice {
	status := req.Status
	if status == "" {
		status = domain.InvoiceDraft
	}

	invoice := &domain.Invoice{
		VendorID:      act.VendorID,
		CreatedBy:     act.UserID,
		Number:        req.Number,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Subtotal:      req.Subtotal,
		TaxTotal:      req.TaxTotal,
		Total:         req.Total,
		Status:        status,
		Notes:         req.Notes,
		Currency:      domain.DefaultCurrency,
		Items:         make([]domain.InvoiceItem, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		taxRate := decimal.Zero
		if item.TaxRate != nil {
			taxRate = *item.TaxRate
		}

		invoice.Items = append(invoice.Items, domain.InvoiceItem{
			CreatedBy:   act.UserID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     taxRate,
			LineTotal:   item.Total,
		})
	}

	return invoice
}

func documentFileName(invoice *domain.Invoice) string {
	name := unsafeKeyChars.ReplaceAllString(invoice.Number, "_")
	if name == "" || name == "_" {
		name = invoice.ID.String()
	}
	return name + ".pdf"
}
