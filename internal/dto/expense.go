package dto

import (
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	ClientID    string           `json:"client_id" binding:"required"`
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description *string          `json:"description,omitempty"`
}

// UpdateExpenseRequest defines the fields that can be edited on an expense.
type UpdateExpenseRequest struct {
	ClientID    *string          `json:"client_id,omitempty"`
	Date        *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Date:        e.Date.Format(domain.DateLayout),
		Amount:      e.Amount,
		Description: e.Description,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
