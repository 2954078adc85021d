package services

import (
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Session:   NewSessionService(repos.SessionRepo, repos.ClientRepo, repos.BusinessConfigRepo, options...),
		Expense:   NewExpenseService(repos.ExpenseRepo, repos.ClientRepo, options...),
		Client:    NewClientService(repos.ClientRepo, options...),
		Settings:  NewSettingsService(repos.BusinessConfigRepo, options...),
		Reporting: NewReportingService(repos.SessionRepo, repos.ExpenseRepo, repos.BusinessConfigRepo, options...),
		Invoice:   NewInvoiceService(repos.SessionRepo, repos.ExpenseRepo, repos.ClientRepo, repos.BusinessConfigRepo, options...),
		Auth:      NewAuthService(cfg, options...),
	}
}
