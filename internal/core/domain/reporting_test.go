package domain_test

import (
	"testing"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthlyReport(t *testing.T) {
	sessions, expenses := fixture()
	sessions = domain.FilterByClient(sessions, "c1")
	expenses = domain.FilterByClient(expenses, "c1")
	cfg := domain.DefaultBusinessConfig()

	unselected := domain.BuildMonthlyReport("c1", sessions, expenses, nil, cfg)
	assert.Nil(t, unselected.Period)
	require.Len(t, unselected.AvailableMonths, 4)
	assert.Equal(t, "May 2024", unselected.AvailableMonths[0].Label)
	assert.Equal(t, 0, unselected.SessionCount)
	assert.True(t, unselected.Totals.Total.IsZero())

	may := domain.BuildMonthlyReport("c1", sessions, expenses, &domain.YearMonth{Year: 2024, Month: 5}, cfg)
	require.NotNil(t, may.Period)
	assert.Equal(t, "May 2024", may.Period.Label)
	assert.Equal(t, "10.00", may.Totals.Total.StringFixed(2))

	march := domain.BuildMonthlyReport("c1", sessions, expenses, &domain.YearMonth{Year: 2024, Month: 3}, cfg)
	assert.Equal(t, 1, march.SessionCount)
	assert.Equal(t, "2h 0m", march.HoursFormatted)
	assert.Equal(t, "34.99", march.Totals.Total.StringFixed(2))
	assert.Equal(t, "£", march.CurrencySymbol)
	assert.Len(t, march.AvailableMonths, 4)
}

func TestBuildMonthlyReport_NoData(t *testing.T) {
	r := domain.BuildMonthlyReport("", nil, nil, nil, domain.DefaultBusinessConfig())
	assert.Nil(t, r.Period)
	assert.Empty(t, r.AvailableMonths)
	assert.True(t, r.Totals.Total.IsZero())
}

func TestBuildTaxYearReport(t *testing.T) {
	sessions, expenses := fixture()
	sessions[0].Miles = decimal.NewFromInt(32)
	cfg := domain.DefaultBusinessConfig()

	r := domain.BuildTaxYearReport("", sessions, expenses, nil, cfg)
	assert.Nil(t, r.TaxYear)
	require.Len(t, r.AvailableYears, 2)
	assert.Equal(t, 2024, r.AvailableYears[0].TaxYear)
	assert.Equal(t, "2024/2025 (April 2024 - March 2025)", r.AvailableYears[0].Label)
	assert.Empty(t, r.Months)

	prior := 2023
	r = domain.BuildTaxYearReport("", sessions, expenses, &prior, cfg)
	require.NotNil(t, r.TaxYear)
	assert.Equal(t, "2023/2024 (April 2023 - March 2024)", r.TaxYear.Label)
	assert.Equal(t, 3, r.SessionCount)
	assert.Len(t, r.Months, 2)
	assert.Equal(t, "32", r.TotalMiles.String())
	assert.Equal(t, "14.40", r.MileageAllowance.StringFixed(2))
}
