package domain

import (
	"fmt"
	"time"
)

// TaxYearOf returns the calendar year in which the fiscal year containing d began.
func TaxYearOf(d time.Time, startMonth int) int {
	if int(d.Month()) >= startMonth {
		return d.Year()
	}
	return d.Year() - 1
}

// TaxYearLabel renders e.g. "2024/2025 (April 2024 - March 2025)".
func TaxYearLabel(fiscalYear, startMonth int) string {
	endMonth := startMonth - 1
	if endMonth == 0 {
		endMonth = 12
	}
	return fmt.Sprintf("%d/%d (%s %d - %s %d)",
		fiscalYear, fiscalYear+1,
		time.Month(startMonth).String(), fiscalYear,
		time.Month(endMonth).String(), fiscalYear+1,
	)
}
