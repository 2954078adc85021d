package jsonfile

import (
	"fmt"
	"os"
	"sync"

	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider creates the JSON file repositories rooted at dataDir,
// creating the directory if needed.
func NewRepositoryProvider(dataDir string) (portsrepo.RepositoryProvider, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
	}
	base := BaseRepository{Dir: dataDir, mu: &sync.Mutex{}}

	return portsrepo.RepositoryProvider{
		SessionRepo:        newSessionRepository(base),
		ExpenseRepo:        newExpenseRepository(base),
		ClientRepo:         newClientRepository(base),
		BusinessConfigRepo: newBusinessConfigRepository(base),
	}, nil
}
