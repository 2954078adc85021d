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

type PgxSessionRepository struct {
	BaseRepository
}

// newPgxSessionRepository creates a new repository for work sessions.
func newPgxSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

const sessionColumns = `id, client_id, to_char(work_date, 'YYYY-MM-DD'), start_time, end_time, hours, hourly_rate, amount, miles`

func scanSession(row pgx.Row) (models.WorkSession, error) {
	var m models.WorkSession
	err := row.Scan(&m.ID, &m.ClientID, &m.Date, &m.StartTime, &m.EndTime, &m.Hours, &m.HourlyRate, &m.Amount, &m.Miles)
	return m, err
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = $1;`

	m, err := scanSession(r.Pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	session, err := mapping.ToDomainWorkSession(m)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PgxSessionRepository) ListSessions(ctx context.Context) ([]domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions ORDER BY seq;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	stored, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.WorkSession, error) {
		return scanSession(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sessions: %w", err)
	}
	return mapping.ToDomainWorkSessionSlice(stored)
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.WorkSession) error {
	m := mapping.ToModelWorkSession(session)
	query := `
		INSERT INTO work_sessions (id, client_id, work_date, start_time, end_time, hours, hourly_rate, amount, miles)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.ClientID, m.Date, m.StartTime, m.EndTime, m.Hours, m.HourlyRate, m.Amount, m.Miles)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", m.ID, apperrors.ErrDuplicate)
	}
	return nil
}

const updateSessionQuery = `
	UPDATE work_sessions
	SET client_id = $2, work_date = $3, start_time = $4, end_time = $5,
	    hours = $6, hourly_rate = $7, amount = $8, miles = $9
	WHERE id = $1;
`

// UpdateSessions applies all updates in one transaction.
func (r *PgxSessionRepository) UpdateSessions(ctx context.Context, sessions ...domain.WorkSession) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	for _, s := range sessions {
		m := mapping.ToModelWorkSession(s)
		tag, err := tx.Exec(ctx, updateSessionQuery, m.ID, m.ClientID, m.Date, m.StartTime, m.EndTime, m.Hours, m.HourlyRate, m.Amount, m.Miles)
		if err != nil {
			return fmt.Errorf("failed to update session %s: %w", m.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("session %s: %w", m.ID, apperrors.ErrNotFound)
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM work_sessions WHERE id = $1;`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSessionRepository) DeleteAllSessions(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM work_sessions;`); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}
