package repositories

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses in insertion order.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense appends a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense replaces an existing expense matched by ID.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense by its ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// DeleteAllExpenses removes every expense.
	DeleteAllExpenses(ctx context.Context) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
