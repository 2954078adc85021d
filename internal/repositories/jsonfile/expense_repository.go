package jsonfile

import (
	"context"
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/cleaning_tracker/internal/models"
	"github.com/SscSPs/cleaning_tracker/internal/utils/mapping"
)

// ExpenseRepository stores expenses in expenses.json.
type ExpenseRepository struct {
	BaseRepository
}

func newExpenseRepository(base BaseRepository) *ExpenseRepository {
	return &ExpenseRepository{BaseRepository: base}
}

var _ portsrepo.ExpenseRepositoryFacade = (*ExpenseRepository)(nil)

func (r *ExpenseRepository) load() ([]models.Expense, error) {
	var stored []models.Expense
	if _, err := r.readJSON(expensesFile, &stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *ExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range stored {
		if m.ID == expenseID {
			expense, err := mapping.ToDomainExpense(m)
			if err != nil {
				return nil, err
			}
			return &expense, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainExpenseSlice(stored)
}

func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	for _, m := range stored {
		if m.ID == expense.ID {
			return fmt.Errorf("expense %s: %w", expense.ID, apperrors.ErrDuplicate)
		}
	}
	return r.writeJSON(expensesFile, append(stored, mapping.ToModelExpense(expense)))
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range stored {
		if m.ID == expense.ID {
			stored[i] = mapping.ToModelExpense(expense)
			return r.writeJSON(expensesFile, stored)
		}
	}
	return fmt.Errorf("expense %s: %w", expense.ID, apperrors.ErrNotFound)
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range stored {
		if m.ID == expenseID {
			return r.writeJSON(expensesFile, append(stored[:i], stored[i+1:]...))
		}
	}
	return apperrors.ErrNotFound
}

func (r *ExpenseRepository) DeleteAllExpenses(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeJSON(expensesFile, []models.Expense{})
}
