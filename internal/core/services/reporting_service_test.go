package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ledgerFixture() ([]domain.WorkSession, []domain.Expense) {
	sessions := []domain.WorkSession{
		{ID: "s1", ClientID: "c1", Date: day(2024, time.March, 5), Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 11},
			Hours: decimal.NewFromInt(2), Rate: decimal.NewFromInt(15), Amount: decimal.NewFromInt(30), Miles: decimal.NewFromInt(10)},
		{ID: "s2", ClientID: "c2", Date: day(2024, time.March, 6), Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 10},
			Hours: decimal.NewFromInt(1), Rate: decimal.NewFromInt(15), Amount: decimal.NewFromInt(15)},
		{ID: "s3", ClientID: "c1", Date: day(2024, time.April, 8), Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 10},
			Hours: decimal.NewFromInt(1), Rate: decimal.NewFromInt(15), Amount: decimal.NewFromInt(15)},
	}
	expenses := []domain.Expense{
		{ID: "e1", ClientID: "c1", Date: day(2024, time.March, 7), Amount: decimal.RequireFromString("4.50")},
	}
	return sessions, expenses
}

func newReportingMocks(ctx context.Context) (*MockSessionRepository, *MockExpenseRepository, *MockBusinessConfigRepository) {
	sessions, expenses := ledgerFixture()
	sessionRepo := new(MockSessionRepository)
	expenseRepo := new(MockExpenseRepository)
	configRepo := new(MockBusinessConfigRepository)
	sessionRepo.On("ListSessions", mock.Anything).Return(sessions, nil)
	expenseRepo.On("ListExpenses", mock.Anything).Return(expenses, nil)
	configRepo.On("GetBusinessConfig", mock.Anything).Return(defaultConfig(), nil)
	return sessionRepo, expenseRepo, configRepo
}

func TestReportingService_MonthlyReport(t *testing.T) {
	ctx := context.Background()
	sessionRepo, expenseRepo, configRepo := newReportingMocks(ctx)
	svc := services.NewReportingService(sessionRepo, expenseRepo, configRepo)

	report, err := svc.MonthlyReport(ctx, "c1", &domain.YearMonth{Year: 2024, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, report.SessionCount)
	assert.Equal(t, "34.50", report.Totals.Total.StringFixed(2))
	assert.Len(t, report.AvailableMonths, 2)

	all, err := svc.MonthlyReport(ctx, "", &domain.YearMonth{Year: 2024, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, all.SessionCount)
}

func TestReportingService_TaxYearReport(t *testing.T) {
	ctx := context.Background()
	sessionRepo, expenseRepo, configRepo := newReportingMocks(ctx)
	svc := services.NewReportingService(sessionRepo, expenseRepo, configRepo)

	fy := 2023
	report, err := svc.TaxYearReport(ctx, "c1", &fy)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SessionCount)
	assert.Equal(t, "10", report.TotalMiles.String())
	assert.Equal(t, "4.50", report.MileageAllowance.StringFixed(2))
	require.Len(t, report.AvailableYears, 2)
	assert.Equal(t, 2024, report.AvailableYears[0].TaxYear)
}

func TestReportingService_LoadFailure(t *testing.T) {
	ctx := context.Background()
	sessionRepo := new(MockSessionRepository)
	expenseRepo := new(MockExpenseRepository)
	configRepo := new(MockBusinessConfigRepository)
	sessionRepo.On("ListSessions", mock.Anything).Return(nil, errors.New("corrupt file"))
	expenseRepo.On("ListExpenses", mock.Anything).Return([]domain.Expense{}, nil).Maybe()
	configRepo.On("GetBusinessConfig", mock.Anything).Return(defaultConfig(), nil).Maybe()

	svc := services.NewReportingService(sessionRepo, expenseRepo, configRepo)
	_, err := svc.MonthlyReport(ctx, "", nil)
	assert.ErrorContains(t, err, "corrupt file")
}

func TestReportingLedger_InvoiceService_ComposeInvoice(t *testing.T) {
	ctx := context.Background()
	sessionRepo, expenseRepo, configRepo := newReportingMocks(ctx)
	clientRepo := new(MockClientRepository)
	clientRepo.On("ListClients", ctx).Return([]domain.Client{{ID: "c1", Name: "Mrs Smith"}, {ID: "c2", Name: "Mr Jones"}}, nil)

	issued := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	svc := services.NewInvoiceService(sessionRepo, expenseRepo, clientRepo, configRepo,
		services.WithClock(func() time.Time { return issued }))

	inv, err := svc.ComposeInvoice(ctx, "c1", 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, "INV-202403", inv.Number)
	assert.Equal(t, "Mrs Smith", inv.Client.Name)
	assert.Equal(t, issued.AddDate(0, 0, 14), inv.DueOn)
	assert.Len(t, inv.Lines, 1)
	assert.Len(t, inv.ExpenseLines, 1)
	assert.Equal(t, "34.50", inv.Totals.Total.StringFixed(2))
}

func TestReportingLedger_InvoiceService_Validation(t *testing.T) {
	svc := services.NewInvoiceService(nil, nil, nil, nil)
	_, err := svc.ComposeInvoice(context.Background(), "", 2024, 3)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.ComposeInvoice(context.Background(), "c1", 2024, 13)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
