package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// BusinessConfig holds the operator's business settings.
type BusinessConfig struct {
	HourlyRate        decimal.Decimal `json:"hourlyRate"`
	CurrencySymbol    string          `json:"currencySymbol" validate:"required"`
	TaxYearStartMonth int             `json:"taxYearStartMonth" validate:"min=1,max=12"`
	BusinessName      string          `json:"businessName"`
	BusinessAddress   string          `json:"businessAddress"`
	BusinessEmail     string          `json:"businessEmail" validate:"omitempty,email"`
	BusinessPhone     string          `json:"businessPhone"`
	PaymentTerms      int             `json:"paymentTerms" validate:"min=0,max=90"`
	BankName          string          `json:"bankName"`
	AccountName       string          `json:"accountName"`
	SortCode          string          `json:"sortCode"`
	AccountNumber     string          `json:"accountNumber"`
	InvoicePrefix     string          `json:"invoicePrefix" validate:"required"`
}

// DefaultBusinessConfig returns the settings used when nothing has been saved.
func DefaultBusinessConfig() BusinessConfig {
	return BusinessConfig{
		HourlyRate:        decimal.New(1500, -2),
		CurrencySymbol:    "£",
		TaxYearStartMonth: 4,
		BusinessName:      "Your Name",
		BusinessAddress:   "Your Address\nCity, Postcode",
		BusinessEmail:     "your.email@example.com",
		BusinessPhone:     "07xxx xxxxxx",
		PaymentTerms:      14,
		BankName:          "Your Bank",
		AccountName:       "Your Name",
		SortCode:          "00-00-00",
		AccountNumber:     "00000000",
		InvoicePrefix:     "INV",
	}
}

var configValidator = validator.New()

// Validate checks the settings are usable for pricing and invoicing.
func (c BusinessConfig) Validate() error {
	if c.HourlyRate.IsNegative() {
		return fmt.Errorf("hourly rate must not be negative")
	}
	return configValidator.Struct(c)
}
