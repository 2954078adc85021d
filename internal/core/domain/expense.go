package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultExpenseDescription is shown on invoices for expenses without a description.
const DefaultExpenseDescription = "Cleaning supplies"

// Expense is a purchase made on behalf of a client.
type Expense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ClientID    string          `json:"clientID"`
}

func (e Expense) EntryDate() time.Time { return e.Date }
func (e Expense) ClientRef() string    { return e.ClientID }

// InvoiceDescription returns the description, falling back to the default.
func (e Expense) InvoiceDescription() string {
	if e.Description == "" {
		return DefaultExpenseDescription
	}
	return e.Description
}
