package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/cleaning_tracker/internal/models"
	"github.com/SscSPs/cleaning_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxClientRepository stores clients. The initial migration seeds the
// default client, so an untouched database lists the same clients as an
// empty JSON data directory.
type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	var m models.Client
	err := r.Pool.QueryRow(ctx,
		`SELECT id, name, address, default_miles FROM clients WHERE id = $1;`, clientID,
	).Scan(&m.ID, &m.Name, &m.Address, &m.DefaultMiles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, address, default_miles FROM clients ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	stored, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		var m models.Client
		err := row.Scan(&m.ID, &m.Name, &m.Address, &m.DefaultMiles)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return mapping.ToDomainClientSlice(stored), nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	tag, err := r.Pool.Exec(ctx, `
		INSERT INTO clients (id, name, address, default_miles)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;`,
		m.ID, m.Name, m.Address, m.DefaultMiles)
	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", m.ID, apperrors.ErrDuplicate)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE clients SET name = $2, address = $3, default_miles = $4
		WHERE id = $1;`,
		m.ID, m.Name, m.Address, m.DefaultMiles)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", m.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
