package utils

import "time"

const (
	entryIDLayout  = "2006-01-02T15:04:05.000000"
	clientIDLayout = "20060102150405"
)

// NewEntryID derives a session or expense ID from its creation time.
func NewEntryID(now time.Time) string {
	return now.Format(entryIDLayout)
}

// NewClientID derives a client ID from its creation time, to the second.
func NewClientID(now time.Time) string {
	return now.Format(clientIDLayout)
}
