package domain

import "time"

// DateLayout is the calendar-date format used on the wire and on disk.
const DateLayout = "2006-01-02"

// Record is implemented by every entry that belongs to a client on a calendar date.
// The aggregation helpers in this package are written against it so that work
// sessions and expenses can be filtered and bucketed the same way.
type Record interface {
	EntryDate() time.Time
	ClientRef() string
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Before reports whether ym is chronologically earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// Label renders the month as "January 2006".
func (ym YearMonth) Label() string {
	return ym.firstDay().Format("January 2006")
}

// ShortLabel renders the month as "Jan 2006".
func (ym YearMonth) ShortLabel() string {
	return ym.firstDay().Format("Jan 2006")
}

func (ym YearMonth) firstDay() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthOf returns the calendar month containing d.
func MonthOf(d time.Time) YearMonth {
	return YearMonth{Year: d.Year(), Month: int(d.Month())}
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func datesOf[T Record](items []T) []time.Time {
	out := make([]time.Time, len(items))
	for i, item := range items {
		out[i] = item.EntryDate()
	}
	return out
}
