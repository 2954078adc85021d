package dto

import (
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BusinessConfigResponse is the merged business settings record.
type BusinessConfigResponse struct {
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	TaxYearStartMonth int             `json:"tax_year_start_month"`
	CurrencySymbol    string          `json:"currency_symbol"`
	BusinessName      string          `json:"business_name"`
	BusinessAddress   string          `json:"business_address"`
	BusinessEmail     string          `json:"business_email"`
	BusinessPhone     string          `json:"business_phone"`
	PaymentTerms      int             `json:"payment_terms"`
	BankName          string          `json:"bank_name"`
	AccountName       string          `json:"account_name"`
	SortCode          string          `json:"sort_code"`
	AccountNumber     string          `json:"account_number"`
	InvoicePrefix     string          `json:"invoice_prefix"`
}

// UpdateBusinessConfigRequest is a partial settings update. Only the fields
// present are changed; unrecognised keys are ignored by the JSON decoder.
type UpdateBusinessConfigRequest struct {
	HourlyRate        *decimal.Decimal `json:"hourly_rate,omitempty"`
	TaxYearStartMonth *int             `json:"tax_year_start_month,omitempty"`
	CurrencySymbol    *string          `json:"currency_symbol,omitempty"`
	BusinessName      *string          `json:"business_name,omitempty"`
	BusinessAddress   *string          `json:"business_address,omitempty"`
	BusinessEmail     *string          `json:"business_email,omitempty"`
	BusinessPhone     *string          `json:"business_phone,omitempty"`
	PaymentTerms      *int             `json:"payment_terms,omitempty"`
	BankName          *string          `json:"bank_name,omitempty"`
	AccountName       *string          `json:"account_name,omitempty"`
	SortCode          *string          `json:"sort_code,omitempty"`
	AccountNumber     *string          `json:"account_number,omitempty"`
	InvoicePrefix     *string          `json:"invoice_prefix,omitempty"`
}

// ApplyTo overlays the fields present in the request onto cfg.
func (r UpdateBusinessConfigRequest) ApplyTo(cfg *domain.BusinessConfig) {
	if r.HourlyRate != nil {
		cfg.HourlyRate = r.HourlyRate.Round(2)
	}
	if r.TaxYearStartMonth != nil {
		cfg.TaxYearStartMonth = *r.TaxYearStartMonth
	}
	setString(&cfg.CurrencySymbol, r.CurrencySymbol)
	setString(&cfg.BusinessName, r.BusinessName)
	setString(&cfg.BusinessAddress, r.BusinessAddress)
	setString(&cfg.BusinessEmail, r.BusinessEmail)
	setString(&cfg.BusinessPhone, r.BusinessPhone)
	if r.PaymentTerms != nil {
		cfg.PaymentTerms = *r.PaymentTerms
	}
	setString(&cfg.BankName, r.BankName)
	setString(&cfg.AccountName, r.AccountName)
	setString(&cfg.SortCode, r.SortCode)
	setString(&cfg.AccountNumber, r.AccountNumber)
	setString(&cfg.InvoicePrefix, r.InvoicePrefix)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ToBusinessConfigResponse converts domain settings to the API shape.
func ToBusinessConfigResponse(cfg *domain.BusinessConfig) BusinessConfigResponse {
	return BusinessConfigResponse{
		HourlyRate:        cfg.HourlyRate,
		TaxYearStartMonth: cfg.TaxYearStartMonth,
		CurrencySymbol:    cfg.CurrencySymbol,
		BusinessName:      cfg.BusinessName,
		BusinessAddress:   cfg.BusinessAddress,
		BusinessEmail:     cfg.BusinessEmail,
		BusinessPhone:     cfg.BusinessPhone,
		PaymentTerms:      cfg.PaymentTerms,
		BankName:          cfg.BankName,
		AccountName:       cfg.AccountName,
		SortCode:          cfg.SortCode,
		AccountNumber:     cfg.AccountNumber,
		InvoicePrefix:     cfg.InvoicePrefix,
	}
}
