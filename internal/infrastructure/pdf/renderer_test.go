package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRendererRender(t *testing.T) {
	invoice := &domain.Invoice{
		Number:       "2026-0042",
		CustomerName: "Müller & Söhne AG",
		IssueDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		Subtotal:     decimal.NewFromInt(200),
		TaxTotal:     decimal.RequireFromString("16.2"),
		Total:        decimal.RequireFromString("216.2"),
		Currency:     domain.DefaultCurrency,
		Notes:        "Zahlbar innert 30 Tagen",
		Items: []domain.InvoiceItem{
			{Description: "Beratung", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.RequireFromString("8.1"), LineTotal: decimal.NewFromInt(200)},
		},
	}

	data, err := NewInvoiceRenderer().Render(invoice)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestInvoiceRendererNil(t *testing.T) {
	_, err := NewInvoiceRenderer().Render(nil)
	assert.ErrorIs(t, err, e.ErrInvoiceRequired)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "8.10", money(decimal.RequireFromString("8.1")))
	assert.Equal(t, "0.00", money(decimal.Zero))
}
