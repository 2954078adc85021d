package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkSession is one block of billable cleaning work.
type WorkSession struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Start    TimeOfDay       `json:"-"`
	End      TimeOfDay       `json:"-"`
	Hours    decimal.Decimal `json:"hours"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
	Miles    decimal.Decimal `json:"miles"`
	ClientID string          `json:"clientID"`
}

func (s WorkSession) EntryDate() time.Time { return s.Date }
func (s WorkSession) ClientRef() string    { return s.ClientID }

// Reprice recomputes hours and amount from the session's own times and rate.
func (s *WorkSession) Reprice() {
	s.Hours, s.Amount = PriceSession(s.Start, s.End, s.Rate)
}
