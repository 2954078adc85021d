package repositories

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
)

// SessionReader defines read operations for work session data
type SessionReader interface {
	// FindSessionByID retrieves a specific work session by its ID.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.WorkSession, error)

	// ListSessions retrieves all work sessions in insertion order.
	ListSessions(ctx context.Context) ([]domain.WorkSession, error)
}

// SessionWriter defines write operations for work session data
type SessionWriter interface {
	// SaveSession appends a new work session.
	SaveSession(ctx context.Context, session domain.WorkSession) error

	// UpdateSessions replaces existing sessions matched by ID.
	UpdateSessions(ctx context.Context, sessions ...domain.WorkSession) error

	// DeleteSession removes a work session by its ID.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteAllSessions removes every work session.
	DeleteAllSessions(ctx context.Context) error
}

// SessionRepositoryFacade combines all work session repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
