package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTaxYearOf(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		startMonth int
		want       int
	}{
		{name: "last day before april start", date: date(2024, time.March, 31), startMonth: 4, want: 2023},
		{name: "first day of april start", date: date(2024, time.April, 1), startMonth: 4, want: 2024},
		{name: "december with april start", date: date(2024, time.December, 31), startMonth: 4, want: 2024},
		{name: "calendar year", date: date(2024, time.January, 1), startMonth: 1, want: 2024},
		{name: "calendar year end", date: date(2024, time.December, 31), startMonth: 1, want: 2024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.TaxYearOf(tt.date, tt.startMonth))
		})
	}
}

func TestTaxYearLabel(t *testing.T) {
	assert.Equal(t, "2024/2025 (April 2024 - March 2025)", domain.TaxYearLabel(2024, 4))
	assert.Equal(t, "2023/2024 (January 2023 - December 2024)", domain.TaxYearLabel(2023, 1))
}
