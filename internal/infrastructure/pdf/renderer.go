package pdf

import (
	"bytes"
	"fmt"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const dateLayout = "02.01.2006"

// column — колонка таблицы позиций, ширина в мм
type column struct {
	title string
	width float64
	align string
}

var itemColumns = []column{
	{"Beschreibung", 80, "L"},
	{"Menge", 20, "R"},
	{"Preis", 30, "R"},
	{"MwSt %", 20, "R"},
	{"Total", 30, "R"},
}

// InvoiceRenderer отрисовывает счёт в PDF формата A4.
type InvoiceRenderer struct{}

func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{}
}

func (r *InvoiceRenderer) Render(invoice *domain.Invoice) ([]byte, error) {
	if invoice == nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvoiceRequired)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Rechnung "+invoice.Number), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Rechnung "+invoice.Number), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(invoice.CustomerName), "", 1, "L", false, 0, "")
	if invoice.CustomerEmail != "" {
		pdf.CellFormat(0, 5, tr(invoice.CustomerEmail), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
	pdf.CellFormat(0, 5, "Rechnungsdatum: "+invoice.IssueDate.Format(dateLayout), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Fällig am: ")+invoice.DueDate.Format(dateLayout), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for _, c := range itemColumns {
		pdf.CellFormat(c.width, 7, tr(c.title), "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range invoice.Items {
		values := []string{
			item.Description,
			item.Quantity.String(),
			money(item.UnitPrice),
			item.TaxRate.String(),
			money(item.LineTotal),
		}
		for k, c := range itemColumns {
			pdf.CellFormat(c.width, 6, tr(values[k]), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	r.totalLine(pdf, "Zwischensumme", invoice.Subtotal, invoice.Currency, false)
	r.totalLine(pdf, "MwSt", invoice.TaxTotal, invoice.Currency, false)
	r.totalLine(pdf, "Total", invoice.Total, invoice.Currency, true)

	if invoice.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(invoice.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return buf.Bytes(), nil
}

func (r *InvoiceRenderer) totalLine(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal, currency string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(150, 6, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%s %s", currency, money(amount)), "", 1, "R", false, 0, "")
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
