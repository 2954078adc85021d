package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMileageAllowance(t *testing.T) {
	tests := []struct {
		miles string
		want  string
	}{
		{miles: "0", want: "0.00"},
		{miles: "100", want: "45.00"},
		{miles: "10000", want: "4500.00"},
		{miles: "10001", want: "4500.25"},
		{miles: "12000", want: "5000.00"},
		{miles: "33.3", want: "14.99"},
	}
	for _, tt := range tests {
		t.Run(tt.miles, func(t *testing.T) {
			got := domain.MileageAllowance(decimal.RequireFromString(tt.miles))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestMileageAllowance_Monotonic(t *testing.T) {
	prev := decimal.Zero
	for miles := int64(0); miles <= 20000; miles += 250 {
		got := domain.MileageAllowance(decimal.NewFromInt(miles))
		assert.True(t, got.GreaterThanOrEqual(prev), "allowance dropped at %d miles", miles)
		prev = got
	}
}

func TestBackfillMiles(t *testing.T) {
	d := date(2024, time.March, 5)
	withMiles := session("s2", "c1", d, "1", "15")
	withMiles.Miles = decimal.NewFromInt(3)
	sessions := []domain.WorkSession{
		session("s1", "c1", d, "1", "15"),
		withMiles,
		session("s3", "c2", d, "1", "15"),
	}
	clients := []domain.Client{
		{ID: "c1", Name: "One", DefaultMiles: decimal.NewFromInt(8)},
		{ID: "c2", Name: "Two", DefaultMiles: decimal.Zero},
	}

	changed := domain.BackfillMiles(sessions, clients)
	require.Len(t, changed, 1)
	assert.Equal(t, "s1", changed[0].ID)
	assert.Equal(t, "8", changed[0].Miles.String())
	assert.True(t, sessions[0].Miles.IsZero())
}
