package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
)

// sessionService implements portssvc.SessionSvcFacade
type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepositoryFacade
	clientRepo  portsrepo.ClientReader
	configRepo  portsrepo.BusinessConfigReader
}

// NewSessionService creates a new work session service.
func NewSessionService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	configRepo portsrepo.BusinessConfigReader,
	options ...ServiceOption,
) portssvc.SessionSvcFacade {
	return &sessionService{
		BaseService: newBaseService(options...),
		sessionRepo: sessionRepo,
		clientRepo:  clientRepo,
		configRepo:  configRepo,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// CreateSession prices a new session at the current hourly rate. The rate is
// captured on the record so later rate changes leave it untouched.
func (s *sessionService) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*domain.WorkSession, error) {
	date, err := parseDateField("date", req.Date)
	if err != nil {
		return nil, err
	}
	start, err := parseTimeField("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseTimeField("end_time", req.EndTime)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %q: %w", req.ClientID, err)
	}

	cfg, err := s.configRepo.GetBusinessConfig(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load business config")
		return nil, fmt.Errorf("failed to load business config: %w", err)
	}

	miles := client.DefaultMiles
	if req.Miles != nil {
		if err := nonNegative("miles", *req.Miles); err != nil {
			return nil, err
		}
		miles = *req.Miles
	}

	session := domain.WorkSession{
		ID:       utils.NewEntryID(s.Now()),
		ClientID: client.ID,
		Date:     date,
		Start:    start,
		End:      end,
		Rate:     cfg.HourlyRate,
		Miles:    miles,
	}
	session.Reprice()

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save work session", slog.String("session_id", session.ID))
		return nil, fmt.Errorf("failed to save work session: %w", err)
	}

	s.LogInfo(ctx, "Work session logged",
		slog.String("session_id", session.ID),
		slog.String("client_id", session.ClientID),
		slog.String("hours", session.Hours.String()),
		slog.String("amount", session.Amount.String()))
	return &session, nil
}

// UpdateSession edits a session and reprices it. The stored rate is kept
// unless the request supplies a new one.
func (s *sessionService) UpdateSession(ctx context.Context, sessionID string, req dto.UpdateSessionRequest) (*domain.WorkSession, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", sessionID, err)
	}

	if req.ClientID != nil && *req.ClientID != session.ClientID {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("client %q: %w", *req.ClientID, err)
		}
		session.ClientID = *req.ClientID
	}
	if req.Date != nil {
		if session.Date, err = parseDateField("date", *req.Date); err != nil {
			return nil, err
		}
	}
	if req.StartTime != nil {
		if session.Start, err = parseTimeField("start_time", *req.StartTime); err != nil {
			return nil, err
		}
	}
	if req.EndTime != nil {
		if session.End, err = parseTimeField("end_time", *req.EndTime); err != nil {
			return nil, err
		}
	}
	if req.HourlyRate != nil {
		if err := nonNegative("hourly_rate", *req.HourlyRate); err != nil {
			return nil, err
		}
		session.Rate = req.HourlyRate.Round(2)
	}
	if req.Miles != nil {
		if err := nonNegative("miles", *req.Miles); err != nil {
			return nil, err
		}
		session.Miles = *req.Miles
	}
	session.Reprice()

	if err := s.sessionRepo.UpdateSessions(ctx, *session); err != nil {
		s.LogError(ctx, err, "Failed to update work session", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to update work session: %w", err)
	}
	s.LogInfo(ctx, "Work session updated", slog.String("session_id", sessionID))
	return session, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, sessionID string) (*domain.WorkSession, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", sessionID, err)
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, clientID string) ([]domain.WorkSession, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list work sessions")
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	if sessions == nil {
		return []domain.WorkSession{}, nil
	}
	return domain.FilterByClient(sessions, clientID), nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session %q: %w", sessionID, err)
	}
	s.LogInfo(ctx, "Work session deleted", slog.String("session_id", sessionID))
	return nil
}

func (s *sessionService) DeleteAllSessions(ctx context.Context, confirm bool) error {
	if !confirm {
		return apperrors.NewAppError(apperrors.ErrConfirmationRequired, "pass confirm=true to clear all entries", nil)
	}
	if err := s.sessionRepo.DeleteAllSessions(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear work sessions")
		return fmt.Errorf("failed to clear work sessions: %w", err)
	}
	s.LogInfo(ctx, "All work sessions cleared")
	return nil
}

func (s *sessionService) BackfillMiles(ctx context.Context, apply bool) ([]domain.WorkSession, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	changed := domain.BackfillMiles(sessions, clients)
	if apply && len(changed) > 0 {
		if err := s.sessionRepo.UpdateSessions(ctx, changed...); err != nil {
			s.LogError(ctx, err, "Failed to save backfilled miles")
			return nil, fmt.Errorf("failed to save backfilled miles: %w", err)
		}
	}
	s.LogInfo(ctx, "Mileage backfill finished", slog.Int("changed", len(changed)), slog.Bool("applied", apply))
	return changed, nil
}
