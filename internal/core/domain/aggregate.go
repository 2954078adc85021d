package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Totals sums a set of sessions and expenses.
type Totals struct {
	Hours    decimal.Decimal `json:"hours"`
	Labour   decimal.Decimal `json:"labour"`
	Expenses decimal.Decimal `json:"expenses"`
	Total    decimal.Decimal `json:"total"`
}

// MonthRow is one month of a fiscal-year breakdown.
type MonthRow struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Label          string          `json:"label"`
	Sessions       int             `json:"sessions"`
	Hours          decimal.Decimal `json:"hours"`
	HoursFormatted string          `json:"hoursFormatted"`
	Labour         decimal.Decimal `json:"labour"`
	Expenses       decimal.Decimal `json:"expenses"`
	Total          decimal.Decimal `json:"total"`
}

// FilterByClient keeps items for clientID. An empty id keeps everything.
func FilterByClient[T Record](items []T, clientID string) []T {
	if clientID == "" {
		return items
	}
	return filter(items, func(item T) bool { return item.ClientRef() == clientID })
}

// FilterByMonth keeps items dated in the given calendar month.
func FilterByMonth[T Record](items []T, year, month int) []T {
	want := YearMonth{Year: year, Month: month}
	return filter(items, func(item T) bool { return MonthOf(item.EntryDate()) == want })
}

// FilterByFiscalYear keeps items that fall in the fiscal year starting in fy.
func FilterByFiscalYear[T Record](items []T, fy, startMonth int) []T {
	return filter(items, func(item T) bool { return TaxYearOf(item.EntryDate(), startMonth) == fy })
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// AvailableMonths lists the distinct months with any activity, newest first.
func AvailableMonths(sessions []WorkSession, expenses []Expense) []YearMonth {
	seen := make(map[YearMonth]struct{})
	for _, d := range append(datesOf(sessions), datesOf(expenses)...) {
		seen[MonthOf(d)] = struct{}{}
	}
	months := make([]YearMonth, 0, len(seen))
	for ym := range seen {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool { return months[j].Before(months[i]) })
	return months
}

// AvailableFiscalYears lists the distinct fiscal years with any activity, newest first.
func AvailableFiscalYears(sessions []WorkSession, expenses []Expense, startMonth int) []int {
	seen := make(map[int]struct{})
	for _, d := range append(datesOf(sessions), datesOf(expenses)...) {
		seen[TaxYearOf(d, startMonth)] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for fy := range seen {
		years = append(years, fy)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ComputeTotals adds up stored hours and amounts. Session amounts are taken as
// recorded; the current rate is never applied here.
func ComputeTotals(sessions []WorkSession, expenses []Expense) Totals {
	t := Totals{Hours: decimal.Zero, Labour: decimal.Zero, Expenses: decimal.Zero}
	for _, s := range sessions {
		t.Hours = t.Hours.Add(s.Hours)
		t.Labour = t.Labour.Add(s.Amount)
	}
	for _, e := range expenses {
		t.Expenses = t.Expenses.Add(e.Amount)
	}
	t.Total = t.Labour.Add(t.Expenses)
	return t
}

// TotalMiles sums the miles recorded on sessions.
func TotalMiles(sessions []WorkSession) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sessions {
		total = total.Add(s.Miles)
	}
	return total
}

// MonthlyBreakdown groups the fiscal year's activity by calendar month, oldest first.
func MonthlyBreakdown(sessions []WorkSession, expenses []Expense, fy, startMonth int) []MonthRow {
	sessions = FilterByFiscalYear(sessions, fy, startMonth)
	expenses = FilterByFiscalYear(expenses, fy, startMonth)

	bySessions := make(map[YearMonth][]WorkSession)
	byExpenses := make(map[YearMonth][]Expense)
	for _, s := range sessions {
		ym := MonthOf(s.Date)
		bySessions[ym] = append(bySessions[ym], s)
	}
	for _, e := range expenses {
		ym := MonthOf(e.Date)
		byExpenses[ym] = append(byExpenses[ym], e)
	}

	rows := make([]MonthRow, 0)
	for _, ym := range AvailableMonths(sessions, expenses) {
		t := ComputeTotals(bySessions[ym], byExpenses[ym])
		rows = append(rows, MonthRow{
			Year:           ym.Year,
			Month:          ym.Month,
			Label:          ym.ShortLabel(),
			Sessions:       len(bySessions[ym]),
			Hours:          t.Hours,
			HoursFormatted: FormatDecimalHours(t.Hours),
			Labour:         t.Labour,
			Expenses:       t.Expenses,
			Total:          t.Total,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return YearMonth{rows[i].Year, rows[i].Month}.Before(YearMonth{rows[j].Year, rows[j].Month})
	})
	return rows
}

// SortByDate orders records by date, keeping insertion order for ties.
func SortByDate[T Record](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].EntryDate().Before(out[j].EntryDate()) })
	return out
}
