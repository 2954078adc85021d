package mapping

import (
	"fmt"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelWorkSession converts a domain WorkSession to its stored shape
func ToModelWorkSession(d domain.WorkSession) models.WorkSession {
	return models.WorkSession{
		ID:         d.ID,
		ClientID:   d.ClientID,
		Date:       d.Date.Format(domain.DateLayout),
		StartTime:  d.Start.String(),
		EndTime:    d.End.String(),
		Hours:      d.Hours.InexactFloat64(),
		HourlyRate: d.Rate.InexactFloat64(),
		Amount:     d.Amount.InexactFloat64(),
		Miles:      d.Miles.InexactFloat64(),
	}
}

// ToDomainWorkSession converts a stored work session to the domain type.
// Stored values are trusted as written; only the date and times are parsed.
func ToDomainWorkSession(m models.WorkSession) (domain.WorkSession, error) {
	date, err := parseStoredDate(m.Date)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("session %s: %w", m.ID, err)
	}
	start, err := domain.ParseTimeOfDay(m.StartTime)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("session %s: %w", m.ID, err)
	}
	end, err := domain.ParseTimeOfDay(m.EndTime)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("session %s: %w", m.ID, err)
	}
	return domain.WorkSession{
		ID:       m.ID,
		ClientID: m.ClientID,
		Date:     date,
		Start:    start,
		End:      end,
		Hours:    money(m.Hours),
		Rate:     money(m.HourlyRate),
		Amount:   money(m.Amount),
		Miles:    decimal.NewFromFloat(m.Miles),
	}, nil
}

// ToDomainWorkSessionSlice converts stored sessions, stopping at the first bad record.
func ToDomainWorkSessionSlice(ms []models.WorkSession) ([]domain.WorkSession, error) {
	out := make([]domain.WorkSession, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainWorkSession(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToModelWorkSessionSlice converts domain sessions to their stored shape.
func ToModelWorkSessionSlice(ds []domain.WorkSession) []models.WorkSession {
	out := make([]models.WorkSession, len(ds))
	for i, d := range ds {
		out[i] = ToModelWorkSession(d)
	}
	return out
}
