package mapping

import (
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/models"
)

// ToModelExpense converts a domain Expense to its stored shape
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ID:          d.ID,
		ClientID:    d.ClientID,
		Date:        d.Date.Format(domain.DateLayout),
		Amount:      d.Amount.InexactFloat64(),
		Description: d.Description,
	}
}

// ToDomainExpense converts a stored expense to the domain type
func ToDomainExpense(m models.Expense) (domain.Expense, error) {
	date, err := parseStoredDate(m.Date)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("expense %s: %w", m.ID, err)
	}
	return domain.Expense{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Date:        date,
		Description: m.Description,
		Amount:      money(m.Amount),
	}, nil
}

// ToDomainExpenseSlice converts stored expenses, stopping at the first bad record.
func ToDomainExpenseSlice(ms []models.Expense) ([]domain.Expense, error) {
	out := make([]domain.Expense, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainExpense(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToModelExpenseSlice converts domain expenses to their stored shape.
func ToModelExpenseSlice(ds []domain.Expense) []models.Expense {
	out := make([]models.Expense, len(ds))
	for i, d := range ds {
		out[i] = ToModelExpense(d)
	}
	return out
}
