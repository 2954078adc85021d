package models

// WorkSession is the stored shape of a work session (entries.json / work_sessions).
type WorkSession struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"client_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Amount     float64 `json:"amount"`
	Miles      float64 `json:"miles"`
}
