package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine is a billed work session.
type InvoiceLine struct {
	Date   time.Time       `json:"date"`
	Start  string          `json:"start"`
	End    string          `json:"end"`
	Hours  decimal.Decimal `json:"hours"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	Miles  decimal.Decimal `json:"miles"`
}

// InvoiceExpenseLine is a re-charged expense.
type InvoiceExpenseLine struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is a computed bill for one client and one calendar month. It is
// never persisted; rendering happens elsewhere.
type Invoice struct {
	Number       string               `json:"number"`
	IssuedOn     time.Time            `json:"issuedOn"`
	DueOn        time.Time            `json:"dueOn"`
	Period       YearMonth            `json:"period"`
	PeriodLabel  string               `json:"periodLabel"`
	Business     BusinessConfig       `json:"business"`
	Client       Client               `json:"client"`
	Lines        []InvoiceLine        `json:"lines"`
	ExpenseLines []InvoiceExpenseLine `json:"expenseLines"`
	Totals       Totals               `json:"totals"`
}

// InvoiceNumber builds "{prefix}-{YYYY}{MM}".
func InvoiceNumber(prefix string, year, month int) string {
	return fmt.Sprintf("%s-%d%02d", prefix, year, month)
}

// ComposeInvoice assembles an invoice from sessions and expenses that are
// already narrowed to one client and one month.
func ComposeInvoice(sessions []WorkSession, expenses []Expense, year, month int, cfg BusinessConfig, client Client, issuedOn time.Time) *Invoice {
	period := YearMonth{Year: year, Month: month}
	inv := &Invoice{
		Number:       InvoiceNumber(cfg.InvoicePrefix, year, month),
		IssuedOn:     issuedOn,
		DueOn:        issuedOn.AddDate(0, 0, cfg.PaymentTerms),
		Period:       period,
		PeriodLabel:  period.Label(),
		Business:     cfg,
		Client:       client,
		Lines:        make([]InvoiceLine, 0, len(sessions)),
		ExpenseLines: make([]InvoiceExpenseLine, 0, len(expenses)),
		Totals:       ComputeTotals(sessions, expenses),
	}
	for _, s := range SortByDate(sessions) {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Date:   s.Date,
			Start:  s.Start.String(),
			End:    s.End.String(),
			Hours:  s.Hours,
			Rate:   s.Rate,
			Amount: s.Amount,
			Miles:  s.Miles,
		})
	}
	for _, e := range SortByDate(expenses) {
		inv.ExpenseLines = append(inv.ExpenseLines, InvoiceExpenseLine{
			Date:        e.Date,
			Description: e.InvoiceDescription(),
			Amount:      e.Amount,
		})
	}
	return inv
}
