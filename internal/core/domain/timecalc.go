package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time without a date, as entered for a session.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (seconds, if present, are ignored).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// String renders the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// ElapsedMinutes returns the minutes worked between start and end. An end
// earlier than the start is a shift that crossed midnight.
func ElapsedMinutes(start, end TimeOfDay) int {
	s, e := start.Minutes(), end.Minutes()
	if e < s {
		return (minutesPerDay - s) + e
	}
	return e - s
}

// ComputeHours returns the hours between start and end, in [0, 24).
func ComputeHours(start, end TimeOfDay) float64 {
	return float64(ElapsedMinutes(start, end)) / 60
}

// FormatHours renders hours as "{H}h {M}m". Minutes are truncated, not rounded.
func FormatHours(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatDecimalHours is FormatHours for stored decimal hour values.
func FormatDecimalHours(hours decimal.Decimal) string {
	f, _ := hours.Float64()
	return FormatHours(f)
}

// PriceSession returns the stored hours (2dp) and the labour amount for a
// session at the given rate. The amount is computed from the exact elapsed
// time, then rounded, so 1h20m at 15.00 is 20.00 rather than 1.33*15.
func PriceSession(start, end TimeOfDay, rate decimal.Decimal) (hours, amount decimal.Decimal) {
	exact := decimal.NewFromInt(int64(ElapsedMinutes(start, end))).Div(decimal.NewFromInt(60))
	return exact.Round(2), exact.Mul(rate).Round(2)
}
