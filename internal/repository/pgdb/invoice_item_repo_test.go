package pgdb

import (
	"fmt"
	"testing"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/repository/pgdb/converter"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoiceItemsInsert(t *testing.T) {
	invoiceID, createdBy := uuid.New(), uuid.New()
	items := []domain.InvoiceItem{
		{Description: "Beratung", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.RequireFromString("8.1"), LineTotal: decimal.NewFromInt(200)},
		{Description: "Reise", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(50)},
	}

	query, args := buildInvoiceItemsInsert(converter.NewInvoiceConverter(), invoiceID, createdBy, items)

	assert.Equal(t,
		"INSERT INTO invoice_items (invoice_id, description, qty, unit_price, tax_rate, line_total, created_by) VALUES "+
			"($1, $2, $3, $4, $5, $6, $7), ($8, $9, $10, $11, $12, $13, $14)",
		query,
	)
	require.Len(t, args, 14)

	assert.Equal(t, invoiceID, args[0])
	assert.Equal(t, "Beratung", args[1])
	assert.Equal(t, createdBy, args[6])
	assert.Equal(t, invoiceID, args[7])
	assert.Equal(t, "Reise", args[8])
	assert.True(t, args[11].(decimal.Decimal).IsZero())
	assert.Equal(t, createdBy, args[13])

	assert.Equal(t, uuid.Nil, items[0].InvoiceID)
}

func TestPostgresDuplicate(t *testing.T) {
	assert.False(t, postgresDuplicate(nil))
	assert.False(t, postgresDuplicate(assert.AnError))
	assert.True(t, postgresDuplicate(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, postgresDuplicate(&pgconn.PgError{Code: "23503"}))
}
