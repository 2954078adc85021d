package mapping

import (
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelClient converts a domain Client to its stored shape
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ID:           d.ID,
		Name:         d.Name,
		Address:      d.Address,
		DefaultMiles: d.DefaultMiles.InexactFloat64(),
	}
}

// ToDomainClient converts a stored client to the domain type
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ID:           m.ID,
		Name:         m.Name,
		Address:      m.Address,
		DefaultMiles: decimal.NewFromFloat(m.DefaultMiles),
	}
}

// ToDomainClientSlice converts a slice of stored clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	out := make([]domain.Client, len(ms))
	for i, m := range ms {
		out[i] = ToDomainClient(m)
	}
	return out
}

// ToModelClientSlice converts a slice of domain clients
func ToModelClientSlice(ds []domain.Client) []models.Client {
	out := make([]models.Client, len(ds))
	for i, d := range ds {
		out[i] = ToModelClient(d)
	}
	return out
}
