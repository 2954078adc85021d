package services_test

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.WorkSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkSession), args.Error(1)
}

func (m *MockSessionRepository) ListSessions(ctx context.Context) ([]domain.WorkSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkSession), args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.WorkSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) UpdateSessions(ctx context.Context, sessions ...domain.WorkSession) error {
	return m.Called(ctx, sessions).Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockSessionRepository) DeleteAllSessions(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return m.Called(ctx, expenseID).Error(0)
}

func (m *MockExpenseRepository) DeleteAllExpenses(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

// --- Mock BusinessConfigRepository ---
type MockBusinessConfigRepository struct {
	mock.Mock
}

func (m *MockBusinessConfigRepository) GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessConfig), args.Error(1)
}

func (m *MockBusinessConfigRepository) SaveBusinessConfig(ctx context.Context, cfg domain.BusinessConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func defaultConfig() *domain.BusinessConfig {
	cfg := domain.DefaultBusinessConfig()
	return &cfg
}
