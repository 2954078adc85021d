package mapping

import (
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/SscSPs/cleaning_tracker/internal/models"
)

// ToModelBusinessConfig converts domain settings to their stored shape
func ToModelBusinessConfig(d domain.BusinessConfig) models.BusinessConfig {
	return models.BusinessConfig{
		HourlyRate:        d.HourlyRate.InexactFloat64(),
		TaxYearStartMonth: d.TaxYearStartMonth,
		CurrencySymbol:    d.CurrencySymbol,
		BusinessName:      d.BusinessName,
		BusinessAddress:   d.BusinessAddress,
		BusinessEmail:     d.BusinessEmail,
		BusinessPhone:     d.BusinessPhone,
		PaymentTerms:      d.PaymentTerms,
		BankName:          d.BankName,
		AccountName:       d.AccountName,
		SortCode:          d.SortCode,
		AccountNumber:     d.AccountNumber,
		InvoicePrefix:     d.InvoicePrefix,
	}
}

// ToDomainBusinessConfig converts stored settings to the domain type
func ToDomainBusinessConfig(m models.BusinessConfig) domain.BusinessConfig {
	return domain.BusinessConfig{
		HourlyRate:        money(m.HourlyRate),
		TaxYearStartMonth: m.TaxYearStartMonth,
		CurrencySymbol:    m.CurrencySymbol,
		BusinessName:      m.BusinessName,
		BusinessAddress:   m.BusinessAddress,
		BusinessEmail:     m.BusinessEmail,
		BusinessPhone:     m.BusinessPhone,
		PaymentTerms:      m.PaymentTerms,
		BankName:          m.BankName,
		AccountName:       m.AccountName,
		SortCode:          m.SortCode,
		AccountNumber:     m.AccountNumber,
		InvoicePrefix:     m.InvoicePrefix,
	}
}

// DefaultModelBusinessConfig is the stored shape of the default settings, used
// as the base that saved overrides are decoded onto.
func DefaultModelBusinessConfig() models.BusinessConfig {
	return ToModelBusinessConfig(domain.DefaultBusinessConfig())
}
