package models

// BusinessConfig is the stored shape of the business settings (config.json).
// Decoding a partial document over a populated value keeps the fields it
// does not mention, which is how saved settings are merged over defaults.
type BusinessConfig struct {
	HourlyRate        float64 `json:"hourly_rate"`
	TaxYearStartMonth int     `json:"tax_year_start_month"`
	CurrencySymbol    string  `json:"currency_symbol"`
	BusinessName      string  `json:"business_name"`
	BusinessAddress   string  `json:"business_address"`
	BusinessEmail     string  `json:"business_email"`
	BusinessPhone     string  `json:"business_phone"`
	PaymentTerms      int     `json:"payment_terms"`
	BankName          string  `json:"bank_name"`
	AccountName       string  `json:"account_name"`
	SortCode          string  `json:"sort_code"`
	AccountNumber     string  `json:"account_number"`
	InvoicePrefix     string  `json:"invoice_prefix"`
}
