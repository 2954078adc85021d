package domain

import "github.com/shopspring/decimal"

// PeriodOption is a selectable month in the monthly report.
type PeriodOption struct {
	YearMonth
	Label string `json:"label"`
}

// MonthlyReport summarises one client's activity for one month.
type MonthlyReport struct {
	ClientID        string         `json:"clientID"`
	Period          *PeriodOption  `json:"period,omitempty"`
	AvailableMonths []PeriodOption `json:"availableMonths"`
	SessionCount    int            `json:"sessionCount"`
	Totals          Totals         `json:"totals"`
	HoursFormatted  string         `json:"hoursFormatted"`
	Sessions        []WorkSession  `json:"sessions"`
	Expenses        []Expense      `json:"expenses"`
	CurrencySymbol  string         `json:"currencySymbol"`
}

// TaxYearOption is a selectable fiscal year in the tax-year report.
type TaxYearOption struct {
	TaxYear int    `json:"taxYear"`
	Label   string `json:"label"`
}

// TaxYearReport summarises one client's activity for one fiscal year.
type TaxYearReport struct {
	ClientID         string          `json:"clientID"`
	TaxYear          *TaxYearOption  `json:"taxYear,omitempty"`
	AvailableYears   []TaxYearOption `json:"availableYears"`
	SessionCount     int             `json:"sessionCount"`
	Totals           Totals          `json:"totals"`
	HoursFormatted   string          `json:"hoursFormatted"`
	Months           []MonthRow      `json:"months"`
	TotalMiles       decimal.Decimal `json:"totalMiles"`
	MileageAllowance decimal.Decimal `json:"mileageAllowance"`
	CurrencySymbol   string          `json:"currencySymbol"`
}

// BuildMonthlyReport produces the report for ym. With no month selected only the
// available months are filled in. Records must already be narrowed to the client.
func BuildMonthlyReport(clientID string, sessions []WorkSession, expenses []Expense, ym *YearMonth, cfg BusinessConfig) MonthlyReport {
	report := MonthlyReport{
		ClientID:        clientID,
		AvailableMonths: make([]PeriodOption, 0),
		Sessions:        make([]WorkSession, 0),
		Expenses:        make([]Expense, 0),
		Totals:          ComputeTotals(nil, nil),
		HoursFormatted:  FormatHours(0),
		CurrencySymbol:  cfg.CurrencySymbol,
	}
	months := AvailableMonths(sessions, expenses)
	for _, m := range months {
		report.AvailableMonths = append(report.AvailableMonths, PeriodOption{YearMonth: m, Label: m.Label()})
	}
	if ym == nil {
		return report
	}
	report.Period = &PeriodOption{YearMonth: *ym, Label: ym.Label()}
	report.Sessions = SortByDate(FilterByMonth(sessions, ym.Year, ym.Month))
	report.Expenses = SortByDate(FilterByMonth(expenses, ym.Year, ym.Month))
	report.SessionCount = len(report.Sessions)
	report.Totals = ComputeTotals(report.Sessions, report.Expenses)
	report.HoursFormatted = FormatDecimalHours(report.Totals.Hours)
	return report
}

// BuildTaxYearReport produces the report for fiscal year fy. With no year
// selected only the available years are filled in.
func BuildTaxYearReport(clientID string, sessions []WorkSession, expenses []Expense, fy *int, cfg BusinessConfig) TaxYearReport {
	start := cfg.TaxYearStartMonth
	report := TaxYearReport{
		ClientID:         clientID,
		AvailableYears:   make([]TaxYearOption, 0),
		Months:           make([]MonthRow, 0),
		Totals:           ComputeTotals(nil, nil),
		HoursFormatted:   FormatHours(0),
		TotalMiles:       decimal.Zero,
		MileageAllowance: decimal.Zero,
		CurrencySymbol:   cfg.CurrencySymbol,
	}
	years := AvailableFiscalYears(sessions, expenses, start)
	for _, y := range years {
		report.AvailableYears = append(report.AvailableYears, TaxYearOption{TaxYear: y, Label: TaxYearLabel(y, start)})
	}
	if fy == nil {
		return report
	}
	report.TaxYear = &TaxYearOption{TaxYear: *fy, Label: TaxYearLabel(*fy, start)}
	yearSessions := FilterByFiscalYear(sessions, *fy, start)
	yearExpenses := FilterByFiscalYear(expenses, *fy, start)
	report.SessionCount = len(yearSessions)
	report.Totals = ComputeTotals(yearSessions, yearExpenses)
	report.HoursFormatted = FormatDecimalHours(report.Totals.Hours)
	report.Months = MonthlyBreakdown(yearSessions, yearExpenses, *fy, start)
	report.TotalMiles = TotalMiles(yearSessions)
	report.MileageAllowance = MileageAllowance(report.TotalMiles)
	return report
}
