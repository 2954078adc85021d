package services

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
)

// InvoiceSvcFacade composes invoices on demand.
type InvoiceSvcFacade interface {
	// ComposeInvoice builds the invoice for one client and one calendar month.
	ComposeInvoice(ctx context.Context, clientID string, year, month int) (*domain.Invoice, error)
}
