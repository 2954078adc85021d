package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
	"github.com/shopspring/decimal"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	clientRepo  portsrepo.ClientReader
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, clientRepo portsrepo.ClientReader, options ...ServiceOption) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: newBaseService(options...),
		expenseRepo: expenseRepo,
		clientRepo:  clientRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func positiveAmount(v decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return v.Round(2), nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	date, err := parseDateField("date", req.Date)
	if err != nil {
		return nil, err
	}
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	amount, err := positiveAmount(*req.Amount)
	if err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("client %q: %w", req.ClientID, err)
	}

	description := domain.DefaultExpenseDescription
	if req.Description != nil {
		description = *req.Description
	}

	expense := domain.Expense{
		ID:          utils.NewEntryID(s.Now()),
		ClientID:    req.ClientID,
		Date:        date,
		Description: description,
		Amount:      amount,
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ID),
		slog.String("client_id", expense.ClientID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("expense %q: %w", expenseID, err)
	}

	if req.ClientID != nil && *req.ClientID != expense.ClientID {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("client %q: %w", *req.ClientID, err)
		}
		expense.ClientID = *req.ClientID
	}
	if req.Date != nil {
		if expense.Date, err = parseDateField("date", *req.Date); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if expense.Amount, err = positiveAmount(*req.Amount); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("expense %q: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, clientID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return domain.FilterByClient(expenses, clientID), nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %q: %w", expenseID, err)
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

func (s *expenseService) DeleteAllExpenses(ctx context.Context, confirm bool) error {
	if !confirm {
		return apperrors.NewAppError(apperrors.ErrConfirmationRequired, "pass confirm=true to clear all expenses", nil)
	}
	if err := s.expenseRepo.DeleteAllExpenses(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear expenses")
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	s.LogInfo(ctx, "All expenses cleared")
	return nil
}
