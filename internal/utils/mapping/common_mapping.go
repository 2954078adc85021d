package mapping

import (
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// money converts a stored float amount back to a 2dp decimal.
func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// parseStoredDate accepts "YYYY-MM-DD" and tolerates a trailing time part.
func parseStoredDate(s string) (time.Time, error) {
	if len(s) > len(domain.DateLayout) {
		s = s[:len(domain.DateLayout)]
	}
	return domain.ParseDate(s)
}
