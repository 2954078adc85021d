package dto

import (
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the data needed to add a client.
type CreateClientRequest struct {
	Name         string           `json:"name" binding:"required"`
	Address      string           `json:"address"`
	DefaultMiles *decimal.Decimal `json:"default_miles,omitempty"`
}

// UpdateClientRequest defines the editable client fields.
type UpdateClientRequest struct {
	Name         *string          `json:"name,omitempty"`
	Address      *string          `json:"address,omitempty"`
	DefaultMiles *decimal.Decimal `json:"default_miles,omitempty"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	DefaultMiles decimal.Decimal `json:"default_miles"`
}

// ToClientResponse converts a domain.Client to a ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		DefaultMiles: c.DefaultMiles,
	}
}

// ToListClientResponse converts a slice of domain.Client to ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
