package services

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
)

// SettingsSvcFacade manages the business settings.
type SettingsSvcFacade interface {
	// GetBusinessConfig returns the stored settings merged over the defaults.
	GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error)

	// UpdateBusinessConfig applies a partial update and validates the result.
	UpdateBusinessConfig(ctx context.Context, req dto.UpdateBusinessConfigRequest) (*domain.BusinessConfig, error)
}
