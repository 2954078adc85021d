package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
)

type invoiceService struct {
	BaseService
	sessionRepo portsrepo.SessionReader
	expenseRepo portsrepo.ExpenseReader
	clientRepo  portsrepo.ClientReader
	configRepo  portsrepo.BusinessConfigReader
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	sessionRepo portsrepo.SessionReader,
	expenseRepo portsrepo.ExpenseReader,
	clientRepo portsrepo.ClientReader,
	configRepo portsrepo.BusinessConfigReader,
	options ...ServiceOption,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService: newBaseService(options...),
		sessionRepo: sessionRepo,
		expenseRepo: expenseRepo,
		clientRepo:  clientRepo,
		configRepo:  configRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// ComposeInvoice bills the client's activity in one month. The invoice is
// dated today, so regenerating it later moves the issue and due dates.
func (s *invoiceService) ComposeInvoice(ctx context.Context, clientID string, year, month int) (*domain.Invoice, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client_id is required", apperrors.ErrValidation)
	}
	if year < 1 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: year and month (1-12) are required", apperrors.ErrValidation)
	}

	l, err := loadLedger(ctx, s.sessionRepo, s.expenseRepo, s.configRepo)
	if err != nil {
		s.LogError(ctx, err, "Failed to load data for invoice", slog.String("client_id", clientID))
		return nil, err
	}
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for invoice")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	sessions := domain.FilterByMonth(domain.FilterByClient(l.sessions, clientID), year, month)
	expenses := domain.FilterByMonth(domain.FilterByClient(l.expenses, clientID), year, month)
	client := domain.ResolveClient(clients, clientID)

	invoice := domain.ComposeInvoice(sessions, expenses, year, month, *l.config, client, s.Now())
	s.LogInfo(ctx, "Invoice composed",
		slog.String("invoice_number", invoice.Number),
		slog.String("client_id", clientID),
		slog.String("total", invoice.Totals.Total.String()))
	return invoice, nil
}
