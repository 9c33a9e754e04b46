package pgdb

import (
	"context"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const invoiceColumns = `id, invoice_no, customer_name, customer_email, vendor_id, created_by, issue_date, due_date,
	subtotal, tax_total, total, status, notes, currency, created_at`

// InvoiceRepo реализует репозиторий счетов поверх PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
	conv converter.InvoiceConverter
}

func NewInvoiceRepo(pool *pgxpool.Pool, conv converter.InvoiceConverter) *InvoiceRepo {
	return &InvoiceRepo{pool: pool, conv: conv}
}

// Create вставляет строку счёта и возвращает id, который сгенерировала БД.
func (i *InvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) (uuid.UUID, error) {
	model := i.conv.ToModel(invoice)
	query := `
		INSERT INTO invoices (
			invoice_no, customer_name, customer_email, vendor_id, created_by,
			issue_date, due_date, subtotal, tax_total, total, status, notes, currency
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`

	var id uuid.UUID
	err := tr.QuerierFromCtx(ctx, i.pool).QueryRow(ctx, query,
		model.InvoiceNo, model.CustomerName, model.CustomerEmail, model.VendorID, model.CreatedBy,
		model.IssueDate, model.DueDate, model.Subtotal, model.TaxTotal, model.Total,
		model.Status, model.Notes, model.Currency,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

func (i *InvoiceRepo) List(ctx context.Context, vendorID uuid.UUID) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE vendor_id = $1 ORDER BY issue_date DESC, created_at DESC`

	rows, err := tr.QuerierFromCtx(ctx, i.pool).Query(ctx, query, vendorID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Invoice, 0)
	for rows.Next() {
		model, err := scanInvoice(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *i.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (i *InvoiceRepo) Get(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE vendor_id = $1 AND id = $2`

	model, err := scanInvoice(tr.QuerierFromCtx(ctx, i.pool).QueryRow(ctx, query, vendorID, id))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), notFound(err, e.ErrInvoiceNotFound))
	}

	return i.conv.ToEntity(model), nil
}

func scanInvoice(row pgx.Row) (*converter.InvoiceModel, error) {
	var m converter.InvoiceModel
	err := row.Scan(
		&m.ID, &m.InvoiceNo, &m.CustomerName, &m.CustomerEmail, &m.VendorID, &m.CreatedBy,
		&m.IssueDate, &m.DueDate, &m.Subtotal, &m.TaxTotal, &m.Total,
		&m.Status, &m.Notes, &m.Currency, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
