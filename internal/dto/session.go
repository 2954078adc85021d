package dto

import (
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSessionRequest defines the data needed to log a work session.
type CreateSessionRequest struct {
	ClientID  string           `json:"client_id" binding:"required"`
	Date      string           `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string           `json:"start_time" binding:"required"`
	EndTime   string           `json:"end_time" binding:"required"`
	Miles     *decimal.Decimal `json:"miles,omitempty"`
}

// UpdateSessionRequest defines the fields that can be edited on a work session.
// Omitted fields keep their stored value.
type UpdateSessionRequest struct {
	ClientID   *string          `json:"client_id,omitempty"`
	Date       *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartTime  *string          `json:"start_time,omitempty"`
	EndTime    *string          `json:"end_time,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	Miles      *decimal.Decimal `json:"miles,omitempty"`
}

// SessionResponse defines the data returned for a work session.
type SessionResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Hours      decimal.Decimal `json:"hours"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Amount     decimal.Decimal `json:"amount"`
	Miles      decimal.Decimal `json:"miles"`
}

// ToSessionResponse converts a domain.WorkSession to a SessionResponse DTO
func ToSessionResponse(s *domain.WorkSession) SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		ClientID:   s.ClientID,
		Date:       s.Date.Format(domain.DateLayout),
		StartTime:  s.Start.String(),
		EndTime:    s.End.String(),
		Hours:      s.Hours,
		HourlyRate: s.Rate,
		Amount:     s.Amount,
		Miles:      s.Miles,
	}
}

// ToListSessionResponse converts a slice of domain.WorkSession to SessionResponse DTOs
func ToListSessionResponse(sessions []domain.WorkSession) []SessionResponse {
	res := make([]SessionResponse, len(sessions))
	for i := range sessions {
		res[i] = ToSessionResponse(&sessions[i])
	}
	return res
}

// BackfillMilesResponse reports the sessions that received their client's default mileage.
type BackfillMilesResponse struct {
	Applied bool              `json:"applied"`
	Changed []SessionResponse `json:"changed"`
}
