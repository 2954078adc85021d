package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
)

//go:embed templates/invoice.html.tmpl
var templatesFS embed.FS

var invoiceTemplate = template.Must(
	template.New("invoice.html.tmpl").
		Funcs(template.FuncMap{
			"nl2br":  nl2br,
			"date":   utils.FormatDisplayDate,
			"fixed2": fixed2,
			// replaced per render with the invoice's currency symbol
			"money": moneyFormatter(""),
		}).
		ParseFS(templatesFS, "templates/invoice.html.tmpl"),
)

// HTMLRenderer renders a printable single-page A4 invoice.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Render(w io.Writer, inv *domain.Invoice) error {
	tmpl, err := invoiceTemplate.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone invoice template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{"money": moneyFormatter(inv.Business.CurrencySymbol)})
	if err := tmpl.Execute(w, inv); err != nil {
		return fmt.Errorf("failed to render invoice %s: %w", inv.Number, err)
	}
	return nil
}
