package repositories

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
)

// BusinessConfigReader loads the business settings.
type BusinessConfigReader interface {
	// GetBusinessConfig returns the stored settings merged over the defaults.
	GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error)
}

// BusinessConfigWriter persists the business settings.
type BusinessConfigWriter interface {
	// SaveBusinessConfig stores the full settings record.
	SaveBusinessConfig(ctx context.Context, cfg domain.BusinessConfig) error
}

// BusinessConfigRepositoryFacade combines the business settings interfaces
type BusinessConfigRepositoryFacade interface {
	BusinessConfigReader
	BusinessConfigWriter
}
