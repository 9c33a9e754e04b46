package pgdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// invoiceItemInsertColumns — порядок колонок многострочного INSERT
var invoiceItemInsertColumns = []string{"invoice_id", "description", "qty", "unit_price", "tax_rate", "line_total", "created_by"}

// InvoiceItemRepo реализует репозиторий позиций счёта поверх PostgreSQL.
type InvoiceItemRepo struct {
	pool *pgxpool.Pool
	conv converter.InvoiceConverter
}

func NewInvoiceItemRepo(pool *pgxpool.Pool, conv converter.InvoiceConverter) *InvoiceItemRepo {
	return &InvoiceItemRepo{pool: pool, conv: conv}
}

// CreateBatch вставляет все позиции одним запросом. Каждой строке присваиваются
// invoiceID и createdBy.
func (r *InvoiceItemRepo) CreateBatch(ctx context.Context, invoiceID uuid.UUID, createdBy uuid.UUID, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}

	query, args := buildInvoiceItemsInsert(r.conv, invoiceID, createdBy, items)

	tag, err := tr.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() != int64(len(items)) {
		return fmt.Errorf("%s: inserted %d of %d invoice items", whereami.WhereAmI(), tag.RowsAffected(), len(items))
	}

	return nil
}

func (r *InvoiceItemRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, qty, unit_price, tax_rate, line_total, created_by
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position
	`

	rows, err := tr.QuerierFromCtx(ctx, r.pool).Query(ctx, query, invoiceID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.InvoiceItem, 0)
	for rows.Next() {
		var m converter.InvoiceItemModel
		if err := rows.Scan(&m.ID, &m.InvoiceID, &m.Description, &m.Quantity, &m.UnitPrice, &m.TaxRate, &m.LineTotal, &m.CreatedBy); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *r.conv.ItemToEntity(&m))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// buildInvoiceItemsInsert собирает INSERT ... VALUES (...), (...) с плейсхолдерами по порядку.
func buildInvoiceItemsInsert(conv converter.InvoiceConverter, invoiceID uuid.UUID, createdBy uuid.UUID, items []domain.InvoiceItem) (string, []any) {
	width := len(invoiceItemInsertColumns)
	args := make([]any, 0, len(items)*width)
	rows := make([]string, 0, len(items))

	for k := range items {
		item := items[k]
		item.InvoiceID = invoiceID
		item.CreatedBy = createdBy
		m := conv.ItemToModel(&item)

		placeholders := make([]string, width)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", k*width+j+1)
		}
		rows = append(rows, "("+strings.Join(placeholders, ", ")+")")

		args = append(args, m.InvoiceID, m.Description, m.Quantity, m.UnitPrice, m.TaxRate, m.LineTotal, m.CreatedBy)
	}

	query := "INSERT INTO invoice_items (" + strings.Join(invoiceItemInsertColumns, ", ") + ") VALUES " + strings.Join(rows, ", ")
	return query, args
}
