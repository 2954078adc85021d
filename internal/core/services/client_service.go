package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
	"github.com/shopspring/decimal"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, options ...ServiceOption) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: newBaseService(options...),
		clientRepo:  clientRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	miles := decimal.Zero
	if req.DefaultMiles != nil {
		if err := nonNegative("default_miles", *req.DefaultMiles); err != nil {
			return nil, err
		}
		miles = *req.DefaultMiles
	}

	id, err := s.nextClientID(ctx)
	if err != nil {
		return nil, err
	}
	client := domain.Client{ID: id, Name: name, Address: req.Address, DefaultMiles: miles}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", id))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", id))
	return &client, nil
}

// nextClientID suffixes the timestamp ID when two clients are added within
// the same second.
func (s *clientService) nextClientID(ctx context.Context) (string, error) {
	base := utils.NewClientID(s.Now())
	id := base
	for n := 2; ; n++ {
		_, err := s.clientRepo.FindClientByID(ctx, id)
		if errors.Is(err, apperrors.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check client id: %w", err)
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("client %q: %w", clientID, err)
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
		}
		client.Name = name
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.DefaultMiles != nil {
		if err := nonNegative("default_miles", *req.DefaultMiles); err != nil {
			return nil, err
		}
		client.DefaultMiles = *req.DefaultMiles
	}
	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("client %q: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// DeleteClient removes a client. Sessions and expenses that reference it are
// kept; invoices for them fall back to the first remaining client.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}
	found := false
	for _, c := range clients {
		if c.ID == clientID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("client %q: %w", clientID, apperrors.ErrNotFound)
	}
	if len(clients) == 1 {
		return apperrors.NewAppError(apperrors.ErrConflict, "cannot delete the last client", nil)
	}
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
