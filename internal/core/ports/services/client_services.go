package services

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
)

// ClientReaderSvc defines read operations for clients
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for clients
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client. The last remaining client cannot be removed.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
