package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	sessionRepo portsrepo.SessionReader
	expenseRepo portsrepo.ExpenseReader
	configRepo  portsrepo.BusinessConfigReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	sessionRepo portsrepo.SessionReader,
	expenseRepo portsrepo.ExpenseReader,
	configRepo portsrepo.BusinessConfigReader,
	options ...ServiceOption,
) portssvc.ReportingService {
	return &reportingService{
		BaseService: newBaseService(options...),
		sessionRepo: sessionRepo,
		expenseRepo: expenseRepo,
		configRepo:  configRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ledger is everything a report or invoice reads.
type ledger struct {
	sessions []domain.WorkSession
	expenses []domain.Expense
	config   *domain.BusinessConfig
}

// loadLedger reads sessions, expenses and settings concurrently.
func loadLedger(ctx context.Context, sessionRepo portsrepo.SessionReader, expenseRepo portsrepo.ExpenseReader, configRepo portsrepo.BusinessConfigReader) (*ledger, error) {
	var l ledger
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		l.sessions, err = sessionRepo.ListSessions(gctx)
		if err != nil {
			return fmt.Errorf("failed to list work sessions: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		l.expenses, err = expenseRepo.ListExpenses(gctx)
		if err != nil {
			return fmt.Errorf("failed to list expenses: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		l.config, err = configRepo.GetBusinessConfig(gctx)
		if err != nil {
			return fmt.Errorf("failed to load business config: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &l, nil
}

// MonthlyReport summarises one calendar month for a client (or all clients).
func (s *reportingService) MonthlyReport(ctx context.Context, clientID string, period *domain.YearMonth) (*domain.MonthlyReport, error) {
	l, err := loadLedger(ctx, s.sessionRepo, s.expenseRepo, s.configRepo)
	if err != nil {
		s.LogError(ctx, err, "Failed to load data for monthly report", slog.String("client_id", clientID))
		return nil, err
	}

	report := domain.BuildMonthlyReport(clientID,
		domain.FilterByClient(l.sessions, clientID),
		domain.FilterByClient(l.expenses, clientID),
		period, *l.config)

	s.LogDebug(ctx, "Monthly report generated",
		slog.String("client_id", clientID),
		slog.Int("sessions", report.SessionCount))
	return &report, nil
}

// TaxYearReport summarises one fiscal year for a client (or all clients).
func (s *reportingService) TaxYearReport(ctx context.Context, clientID string, taxYear *int) (*domain.TaxYearReport, error) {
	l, err := loadLedger(ctx, s.sessionRepo, s.expenseRepo, s.configRepo)
	if err != nil {
		s.LogError(ctx, err, "Failed to load data for tax year report", slog.String("client_id", clientID))
		return nil, err
	}

	report := domain.BuildTaxYearReport(clientID,
		domain.FilterByClient(l.sessions, clientID),
		domain.FilterByClient(l.expenses, clientID),
		taxYear, *l.config)

	s.LogDebug(ctx, "Tax year report generated",
		slog.String("client_id", clientID),
		slog.Int("sessions", report.SessionCount),
		slog.String("mileage_allowance", report.MileageAllowance.String()))
	return &report, nil
}
