package pgsql

import (
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SessionRepo:        newPgxSessionRepository(dbPool),
		ExpenseRepo:        newPgxExpenseRepository(dbPool),
		ClientRepo:         newPgxClientRepository(dbPool),
		BusinessConfigRepo: newPgxBusinessConfigRepository(dbPool),
	}
}
