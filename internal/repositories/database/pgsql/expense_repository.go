package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/cleaning_tracker/internal/models"
	"github.com/SscSPs/cleaning_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expenses.
func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `id, client_id, to_char(expense_date, 'YYYY-MM-DD'), amount, description`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(&m.ID, &m.ClientID, &m.Date, &m.Amount, &m.Description)
	return m, err
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	m, err := scanExpense(r.Pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1;`, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	expense, err := mapping.ToDomainExpense(m)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	stored, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}
	return mapping.ToDomainExpenseSlice(stored)
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (id, client_id, expense_date, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.ClientID, m.Date, m.Amount, m.Description)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", m.ID, apperrors.ErrDuplicate)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET client_id = $2, expense_date = $3, amount = $4, description = $5
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.ClientID, m.Date, m.Amount, m.Description)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", m.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteAllExpenses(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM expenses;`); err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	return nil
}
