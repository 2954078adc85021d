package services

import (
	"context"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
)

// SessionReaderSvc defines read operations for work sessions
type SessionReaderSvc interface {
	// GetSessionByID retrieves a specific work session.
	GetSessionByID(ctx context.Context, sessionID string) (*domain.WorkSession, error)

	// ListSessions retrieves work sessions, optionally narrowed to one client.
	ListSessions(ctx context.Context, clientID string) ([]domain.WorkSession, error)
}

// SessionWriterSvc defines write operations for work sessions
type SessionWriterSvc interface {
	// CreateSession prices and stores a new session at the current hourly rate.
	CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*domain.WorkSession, error)

	// UpdateSession edits a session and reprices it at its own stored rate.
	UpdateSession(ctx context.Context, sessionID string, req dto.UpdateSessionRequest) (*domain.WorkSession, error)

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteAllSessions removes every session. confirm must be true.
	DeleteAllSessions(ctx context.Context, confirm bool) error

	// BackfillMiles fills zero-mile sessions from client defaults, saving only when apply is true.
	BackfillMiles(ctx context.Context, apply bool) ([]domain.WorkSession, error)
}

// SessionSvcFacade combines all work session service interfaces
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionWriterSvc
}
