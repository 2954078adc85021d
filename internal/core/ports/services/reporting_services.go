package services

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
)

// ReportingService defines operations for generating activity reports
type ReportingService interface {
	// MonthlyReport summarises one month. A nil period lists available months only.
	MonthlyReport(ctx context.Context, clientID string, period *domain.YearMonth) (*domain.MonthlyReport, error)

	// TaxYearReport summarises one fiscal year. A nil year lists available years only.
	TaxYearReport(ctx context.Context, clientID string, taxYear *int) (*domain.TaxYearReport, error)
}
