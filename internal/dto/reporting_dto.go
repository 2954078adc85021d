package dto

import (
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthOptionResponse is a selectable month.
type MonthOptionResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
}

// MonthlyReportResponse represents the monthly report response
type MonthlyReportResponse struct {
	AvailableMonths []MonthOptionResponse `json:"available_months"`
	Selected        *MonthOptionResponse  `json:"selected,omitempty"`
	Sessions        int                   `json:"sessions"`
	TotalHours      decimal.Decimal       `json:"total_hours"`
	TotalHoursFmt   string                `json:"total_hours_fmt"`
	TotalLabour     decimal.Decimal       `json:"total_labour"`
	TotalExpenses   decimal.Decimal       `json:"total_expenses"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	Entries         []SessionResponse     `json:"entries"`
	Expenses        []ExpenseResponse     `json:"expenses"`
	Currency        string                `json:"currency"`
}

// TaxYearOptionResponse is a selectable fiscal year.
type TaxYearOptionResponse struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
}

// MonthBreakdownResponse is one month of a tax-year breakdown.
type MonthBreakdownResponse struct {
	Label    string          `json:"label"`
	Sessions int             `json:"sessions"`
	Hours    decimal.Decimal `json:"hours"`
	HoursFmt string          `json:"hours_fmt"`
	Labour   decimal.Decimal `json:"labour"`
	Expenses decimal.Decimal `json:"expenses"`
	Total    decimal.Decimal `json:"total"`
}

// TaxYearReportResponse represents the tax-year report response
type TaxYearReportResponse struct {
	AvailableTaxYears []TaxYearOptionResponse  `json:"available_tax_years"`
	Selected          *TaxYearOptionResponse   `json:"selected,omitempty"`
	Sessions          int                      `json:"sessions"`
	TotalHours        decimal.Decimal          `json:"total_hours"`
	TotalHoursFmt     string                   `json:"total_hours_fmt"`
	TotalLabour       decimal.Decimal          `json:"total_labour"`
	TotalExpenses     decimal.Decimal          `json:"total_expenses"`
	TotalAmount       decimal.Decimal          `json:"total_amount"`
	TotalMiles        decimal.Decimal          `json:"total_miles"`
	MileageAllowance  decimal.Decimal          `json:"mileage_allowance"`
	Breakdown         []MonthBreakdownResponse `json:"breakdown"`
	Currency          string                   `json:"currency"`
}

// MileageAllowanceResponse represents the HMRC mileage allowance for a mileage figure
type MileageAllowanceResponse struct {
	Miles     decimal.Decimal `json:"miles"`
	Allowance decimal.Decimal `json:"allowance"`
}

// ToMonthlyReportResponse converts a domain monthly report to a DTO response
func ToMonthlyReportResponse(report *domain.MonthlyReport) MonthlyReportResponse {
	response := MonthlyReportResponse{
		AvailableMonths: make([]MonthOptionResponse, len(report.AvailableMonths)),
		Sessions:        report.SessionCount,
		TotalHours:      report.Totals.Hours,
		TotalHoursFmt:   report.HoursFormatted,
		TotalLabour:     report.Totals.Labour,
		TotalExpenses:   report.Totals.Expenses,
		TotalAmount:     report.Totals.Total,
		Entries:         ToListSessionResponse(report.Sessions),
		Expenses:        ToListExpenseResponse(report.Expenses),
		Currency:        report.CurrencySymbol,
	}
	for i, m := range report.AvailableMonths {
		response.AvailableMonths[i] = MonthOptionResponse{Year: m.Year, Month: m.Month, Label: m.Label}
	}
	if report.Period != nil {
		response.Selected = &MonthOptionResponse{Year: report.Period.Year, Month: report.Period.Month, Label: report.Period.Label}
	}
	return response
}

// ToTaxYearReportResponse converts a domain tax-year report to a DTO response
func ToTaxYearReportResponse(report *domain.TaxYearReport) TaxYearReportResponse {
	response := TaxYearReportResponse{
		AvailableTaxYears: make([]TaxYearOptionResponse, len(report.AvailableYears)),
		Sessions:          report.SessionCount,
		TotalHours:        report.Totals.Hours,
		TotalHoursFmt:     report.HoursFormatted,
		TotalLabour:       report.Totals.Labour,
		TotalExpenses:     report.Totals.Expenses,
		TotalAmount:       report.Totals.Total,
		TotalMiles:        report.TotalMiles,
		MileageAllowance:  report.MileageAllowance,
		Breakdown:         make([]MonthBreakdownResponse, len(report.Months)),
		Currency:          report.CurrencySymbol,
	}
	for i, y := range report.AvailableYears {
		response.AvailableTaxYears[i] = TaxYearOptionResponse{Year: y.TaxYear, Label: y.Label}
	}
	if report.TaxYear != nil {
		response.Selected = &TaxYearOptionResponse{Year: report.TaxYear.TaxYear, Label: report.TaxYear.Label}
	}
	for i, row := range report.Months {
		response.Breakdown[i] = MonthBreakdownResponse{
			Label:    row.Label,
			Sessions: row.Sessions,
			Hours:    row.Hours,
			HoursFmt: row.HoursFormatted,
			Labour:   row.Labour,
			Expenses: row.Expenses,
			Total:    row.Total,
		}
	}
	return response
}
