package repositories

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by its ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients. A store that has never been written
	// returns the default client list.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient appends a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient replaces an existing client matched by ID.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client by its ID.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
