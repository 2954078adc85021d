package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(id, client string, d time.Time, hours, amount string) domain.WorkSession {
	return domain.WorkSession{
		ID:       id,
		ClientID: client,
		Date:     d,
		Start:    domain.TimeOfDay{Hour: 9},
		End:      domain.TimeOfDay{Hour: 10},
		Hours:    decimal.RequireFromString(hours),
		Rate:     decimal.NewFromInt(15),
		Amount:   decimal.RequireFromString(amount),
		Miles:    decimal.Zero,
	}
}

func expense(id, client string, d time.Time, amount string) domain.Expense {
	return domain.Expense{ID: id, ClientID: client, Date: d, Amount: decimal.RequireFromString(amount)}
}

func fixture() ([]domain.WorkSession, []domain.Expense) {
	sessions := []domain.WorkSession{
		session("s1", "c1", date(2024, time.March, 5), "2", "30"),
		session("s2", "c2", date(2024, time.March, 20), "1.5", "22.5"),
		session("s3", "c1", date(2024, time.April, 2), "3", "45"),
		session("s4", "c1", date(2023, time.June, 9), "1", "12"),
	}
	expenses := []domain.Expense{
		expense("e1", "c1", date(2024, time.March, 6), "4.99"),
		expense("e2", "c1", date(2024, time.May, 1), "10"),
	}
	return sessions, expenses
}

func TestFilterByClient(t *testing.T) {
	sessions, expenses := fixture()
	assert.Len(t, domain.FilterByClient(sessions, ""), 4)
	assert.Len(t, domain.FilterByClient(sessions, "c1"), 3)
	assert.Len(t, domain.FilterByClient(expenses, "c2"), 0)
}

func TestFilterByMonthAndFiscalYear(t *testing.T) {
	sessions, expenses := fixture()
	march := domain.FilterByMonth(sessions, 2024, 3)
	require.Len(t, march, 2)
	assert.Equal(t, "s1", march[0].ID)

	fy23 := domain.FilterByFiscalYear(sessions, 2023, 4)
	assert.Len(t, fy23, 3)
	assert.Len(t, domain.FilterByFiscalYear(expenses, 2024, 4), 1)
}

func TestAvailableMonthsAndYears(t *testing.T) {
	sessions, expenses := fixture()
	months := domain.AvailableMonths(sessions, expenses)
	assert.Equal(t, []domain.YearMonth{
		{Year: 2024, Month: 5},
		{Year: 2024, Month: 4},
		{Year: 2024, Month: 3},
		{Year: 2023, Month: 6},
	}, months)

	assert.Equal(t, []int{2024, 2023}, domain.AvailableFiscalYears(sessions, expenses, 4))
	assert.Empty(t, domain.AvailableMonths(nil, nil))
}

func TestComputeTotals(t *testing.T) {
	empty := domain.ComputeTotals(nil, nil)
	for _, v := range []decimal.Decimal{empty.Hours, empty.Labour, empty.Expenses, empty.Total} {
		assert.True(t, v.IsZero())
	}

	sessions, expenses := fixture()
	got := domain.ComputeTotals(sessions, expenses)
	assert.Equal(t, "7.50", got.Hours.StringFixed(2))
	assert.Equal(t, "109.50", got.Labour.StringFixed(2))
	assert.Equal(t, "14.99", got.Expenses.StringFixed(2))
	assert.Equal(t, "124.49", got.Total.StringFixed(2))
}

func TestComputeTotals_AdditiveOverMonths(t *testing.T) {
	sessions, expenses := fixture()
	whole := domain.ComputeTotals(sessions, expenses)

	sum := domain.ComputeTotals(nil, nil)
	for _, ym := range domain.AvailableMonths(sessions, expenses) {
		part := domain.ComputeTotals(
			domain.FilterByMonth(sessions, ym.Year, ym.Month),
			domain.FilterByMonth(expenses, ym.Year, ym.Month),
		)
		sum.Hours = sum.Hours.Add(part.Hours)
		sum.Labour = sum.Labour.Add(part.Labour)
		sum.Expenses = sum.Expenses.Add(part.Expenses)
		sum.Total = sum.Total.Add(part.Total)
	}
	assert.True(t, whole.Hours.Equal(sum.Hours))
	assert.True(t, whole.Labour.Equal(sum.Labour))
	assert.True(t, whole.Expenses.Equal(sum.Expenses))
	assert.True(t, whole.Total.Equal(sum.Total))
}

func TestComputeTotals_UsesStoredAmount(t *testing.T) {
	s := session("s1", "c1", date(2024, time.March, 5), "2", "20")
	s.Rate = decimal.NewFromInt(99)
	got := domain.ComputeTotals([]domain.WorkSession{s}, nil)
	assert.Equal(t, "20.00", got.Labour.StringFixed(2))
}

func TestMonthlyBreakdown(t *testing.T) {
	sessions, expenses := fixture()
	rows := domain.MonthlyBreakdown(sessions, expenses, 2023, 4)
	require.Len(t, rows, 2)

	assert.Equal(t, "Jun 2023", rows[0].Label)
	assert.Equal(t, 1, rows[0].Sessions)
	assert.Equal(t, "12.00", rows[0].Total.StringFixed(2))

	assert.Equal(t, "Mar 2024", rows[1].Label)
	assert.Equal(t, 2, rows[1].Sessions)
	assert.Equal(t, "3h 30m", rows[1].HoursFormatted)
	assert.Equal(t, "4.99", rows[1].Expenses.StringFixed(2))
	assert.Equal(t, "57.49", rows[1].Total.StringFixed(2))
}

func TestAggregation_Idempotent(t *testing.T) {
	sessions, expenses := fixture()
	first := domain.MonthlyBreakdown(sessions, expenses, 2024, 4)
	second := domain.MonthlyBreakdown(sessions, expenses, 2024, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, "s1", sessions[0].ID)
}

func TestSortByDate_StableForTies(t *testing.T) {
	d := date(2024, time.March, 5)
	in := []domain.WorkSession{
		session("b", "c1", d, "1", "15"),
		session("a", "c1", date(2024, time.March, 1), "1", "15"),
		session("c", "c1", d, "1", "15"),
	}
	out := domain.SortByDate(in)
	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, "b", in[0].ID)
}
