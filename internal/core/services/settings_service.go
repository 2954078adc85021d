package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
)

type settingsService struct {
	BaseService
	configRepo portsrepo.BusinessConfigRepositoryFacade
}

// NewSettingsService creates a new business settings service.
func NewSettingsService(configRepo portsrepo.BusinessConfigRepositoryFacade, options ...ServiceOption) portssvc.SettingsSvcFacade {
	return &settingsService{
		BaseService: newBaseService(options...),
		configRepo:  configRepo,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error) {
	cfg, err := s.configRepo.GetBusinessConfig(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load business config")
		return nil, fmt.Errorf("failed to load business config: %w", err)
	}
	return cfg, nil
}

func (s *settingsService) UpdateBusinessConfig(ctx context.Context, req dto.UpdateBusinessConfigRequest) (*domain.BusinessConfig, error) {
	cfg, err := s.GetBusinessConfig(ctx)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.configRepo.SaveBusinessConfig(ctx, *cfg); err != nil {
		s.LogError(ctx, err, "Failed to save business config")
		return nil, fmt.Errorf("failed to save business config: %w", err)
	}
	s.LogInfo(ctx, "Business config updated")
	return cfg, nil
}
