package jsonfile

import (
	"context"
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/cleaning_tracker/internal/models"
	"github.com/SscSPs/cleaning_tracker/internal/utils/mapping"
)

// ClientRepository stores clients in clients.json.
type ClientRepository struct {
	BaseRepository
}

func newClientRepository(base BaseRepository) *ClientRepository {
	return &ClientRepository{BaseRepository: base}
}

var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

// load returns the stored clients, or the default list when clients.json
// has never been written.
func (r *ClientRepository) load() ([]models.Client, error) {
	var stored []models.Client
	found, err := r.readJSON(clientsFile, &stored)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.DefaultClients(), nil
	}
	return stored, nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range stored {
		if m.ID == clientID {
			client := mapping.ToDomainClient(m)
			return &client, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainClientSlice(stored), nil
}

func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	for _, m := range stored {
		if m.ID == client.ID {
			return fmt.Errorf("client %s: %w", client.ID, apperrors.ErrDuplicate)
		}
	}
	return r.writeJSON(clientsFile, append(stored, mapping.ToModelClient(client)))
}

func (r *ClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range stored {
		if m.ID == client.ID {
			stored[i] = mapping.ToModelClient(client)
			return r.writeJSON(clientsFile, stored)
		}
	}
	return fmt.Errorf("client %s: %w", client.ID, apperrors.ErrNotFound)
}

func (r *ClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range stored {
		if m.ID == clientID {
			return r.writeJSON(clientsFile, append(stored[:i], stored[i+1:]...))
		}
	}
	return apperrors.ErrNotFound
}
