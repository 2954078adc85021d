package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer draws the invoice with gofpdf's core fonts.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Render(w io.Writer, inv *domain.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; this maps "£" and friends from UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	money := moneyFormatter(inv.Business.CurrencySymbol)
	biz := inv.Business

	pdf.SetTitle(tr("Invoice "+inv.Number), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(100, 10, "INVOICE")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 6, tr(biz.BusinessName), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range addressLines(biz.BusinessAddress, biz.BusinessEmail, biz.BusinessPhone) {
		pdf.CellFormat(190, 5, tr(line), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	for _, row := range [][2]string{
		{"Invoice no.", inv.Number},
		{"Date", utils.FormatDisplayDate(inv.IssuedOn)},
		{"Due", utils.FormatDisplayDate(inv.DueOn)},
		{"Period", inv.PeriodLabel},
	} {
		pdf.Cell(30, 6, row[0])
		pdf.Cell(60, 6, tr(row[1]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Bill To:")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, line := range addressLines(inv.Client.Name, inv.Client.Address) {
		pdf.Cell(95, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(35, 8, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 8, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Hours", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Rate", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, l := range inv.Lines {
		pdf.CellFormat(35, 6, utils.FormatDisplayDate(l.Date), "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 6, l.Start+" - "+l.End, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, l.Hours.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, tr(money(l.Rate)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, tr(money(l.Amount)), "1", 1, "R", false, 0, "")
	}
	if len(inv.Lines) == 0 {
		pdf.CellFormat(190, 6, "No work recorded for this period.", "1", 1, "L", false, 0, "")
	}

	if len(inv.ExpenseLines) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(35, 8, "Date", "1", 0, "C", false, 0, "")
		pdf.CellFormat(120, 8, "Expense", "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, "Amount", "1", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, e := range inv.ExpenseLines {
			pdf.CellFormat(35, 6, utils.FormatDisplayDate(e.Date), "1", 0, "L", false, 0, "")
			pdf.CellFormat(120, 6, tr(e.Description), "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 6, tr(money(e.Amount)), "1", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 11)
	totalRow := func(label, value string) {
		pdf.Cell(155, 7, label)
		pdf.CellFormat(35, 7, tr(value), "", 1, "R", false, 0, "")
	}
	totalRow("Total hours:", inv.Totals.Hours.StringFixed(2))
	totalRow("Labour:", money(inv.Totals.Labour))
	if len(inv.ExpenseLines) > 0 {
		totalRow("Expenses:", money(inv.Totals.Expenses))
	}
	pdf.SetFont("Arial", "B", 12)
	totalRow("Total due:", money(inv.Totals.Total))

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Payment Details:")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Payment due within %d days", biz.PaymentTerms),
		"Bank: " + biz.BankName,
		"Account Name: " + biz.AccountName,
		"Sort Code: " + biz.SortCode,
		"Account Number: " + biz.AccountNumber,
		"Reference: " + inv.Number,
	} {
		pdf.Cell(40, 6, tr(line))
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render invoice %s: %w", inv.Number, err)
	}
	return nil
}

// addressLines splits multi-line values and drops blank lines.
func addressLines(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, line := range strings.Split(v, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}
