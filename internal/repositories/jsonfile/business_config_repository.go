package jsonfile

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/cleaning_tracker/internal/utils/mapping"
)

// BusinessConfigRepository stores the business settings in config.json.
type BusinessConfigRepository struct {
	BaseRepository
}

func newBusinessConfigRepository(base BaseRepository) *BusinessConfigRepository {
	return &BusinessConfigRepository{BaseRepository: base}
}

var _ portsrepo.BusinessConfigRepositoryFacade = (*BusinessConfigRepository)(nil)

// GetBusinessConfig decodes config.json over the defaults, so keys missing
// from the file keep their default value and unknown keys are dropped.
func (r *BusinessConfigRepository) GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := mapping.DefaultModelBusinessConfig()
	if _, err := r.readJSON(configFile, &stored); err != nil {
		return nil, err
	}
	cfg := mapping.ToDomainBusinessConfig(stored)
	return &cfg, nil
}

func (r *BusinessConfigRepository) SaveBusinessConfig(ctx context.Context, cfg domain.BusinessConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeJSON(configFile, mapping.ToModelBusinessConfig(cfg))
}
