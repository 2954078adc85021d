package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisplayDateLayout is the day-first format printed on invoices.
const DisplayDateLayout = "02/01/2006"

// FormatMoney renders an amount to two decimal places behind the currency symbol.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// FormatDisplayDate renders a date as dd/mm/yyyy.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}
