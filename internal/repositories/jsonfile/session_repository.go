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

// SessionRepository stores work sessions in entries.json.
type SessionRepository struct {
	BaseRepository
}

func newSessionRepository(base BaseRepository) *SessionRepository {
	return &SessionRepository{BaseRepository: base}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) load() ([]models.WorkSession, error) {
	var stored []models.WorkSession
	if _, err := r.readJSON(entriesFile, &stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.WorkSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range stored {
		if m.ID == sessionID {
			session, err := mapping.ToDomainWorkSession(m)
			if err != nil {
				return nil, err
			}
			return &session, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *SessionRepository) ListSessions(ctx context.Context) ([]domain.WorkSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainWorkSessionSlice(stored)
}

func (r *SessionRepository) SaveSession(ctx context.Context, session domain.WorkSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	for _, m := range stored {
		if m.ID == session.ID {
			return fmt.Errorf("session %s: %w", session.ID, apperrors.ErrDuplicate)
		}
	}
	stored = append(stored, mapping.ToModelWorkSession(session))
	return r.writeJSON(entriesFile, stored)
}

// UpdateSessions writes all the given sessions in one file replacement.
// Nothing is written if any of them is missing.
func (r *SessionRepository) UpdateSessions(ctx context.Context, sessions ...domain.WorkSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	index := make(map[string]int, len(stored))
	for i, m := range stored {
		index[m.ID] = i
	}
	for _, s := range sessions {
		i, ok := index[s.ID]
		if !ok {
			return fmt.Errorf("session %s: %w", s.ID, apperrors.ErrNotFound)
		}
		stored[i] = mapping.ToModelWorkSession(s)
	}
	return r.writeJSON(entriesFile, stored)
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}
	kept := stored[:0]
	for _, m := range stored {
		if m.ID != sessionID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(stored) {
		return apperrors.ErrNotFound
	}
	return r.writeJSON(entriesFile, kept)
}

func (r *SessionRepository) DeleteAllSessions(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeJSON(entriesFile, []models.WorkSession{})
}
