package models

// Expense is the stored shape of an expense (expenses.json / expenses).
type Expense struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"client_id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}
