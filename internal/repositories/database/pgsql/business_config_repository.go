package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/cleaning_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBusinessConfigRepository keeps the settings as a single JSONB row with
// the same keys as config.json.
type PgxBusinessConfigRepository struct {
	BaseRepository
}

func newPgxBusinessConfigRepository(pool *pgxpool.Pool) *PgxBusinessConfigRepository {
	return &PgxBusinessConfigRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessConfigRepositoryFacade = (*PgxBusinessConfigRepository)(nil)

func (r *PgxBusinessConfigRepository) GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error) {
	stored := mapping.DefaultModelBusinessConfig()

	var raw []byte
	err := r.Pool.QueryRow(ctx, `SELECT settings FROM business_config WHERE id = 1;`).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("failed to load business config: %w", err)
	default:
		if err := json.Unmarshal(raw, &stored); err != nil {
			return nil, fmt.Errorf("failed to decode business config: %w", err)
		}
	}

	cfg := mapping.ToDomainBusinessConfig(stored)
	return &cfg, nil
}

func (r *PgxBusinessConfigRepository) SaveBusinessConfig(ctx context.Context, cfg domain.BusinessConfig) error {
	raw, err := json.Marshal(mapping.ToModelBusinessConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to encode business config: %w", err)
	}
	_, err = r.Pool.Exec(ctx, `
		INSERT INTO business_config (id, settings) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET settings = EXCLUDED.settings;`, raw)
	if err != nil {
		return fmt.Errorf("failed to save business config: %w", err)
	}
	return nil
}
