// Package render turns a composed invoice into a document a client can be sent.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// InvoiceRenderer writes an invoice in one output format.
type InvoiceRenderer interface {
	ContentType() string
	Render(w io.Writer, inv *domain.Invoice) error
}

// Format names accepted by ForFormat.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// ForFormat picks a renderer by name. An empty name means HTML.
func ForFormat(format string) (InvoiceRenderer, error) {
	switch strings.ToLower(format) {
	case "", FormatHTML:
		return NewHTMLRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported invoice format %q", format)
	}
}

// nl2br escapes s and turns newlines into line breaks.
func nl2br(s string) template.HTML {
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
}

func fixed2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyFormatter(symbol string) func(decimal.Decimal) string {
	return func(d decimal.Decimal) string {
		return utils.FormatMoney(symbol, d)
	}
}
