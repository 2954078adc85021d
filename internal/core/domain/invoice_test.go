package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-202403", domain.InvoiceNumber("INV", 2024, 3))
	assert.Equal(t, "CLN-202412", domain.InvoiceNumber("CLN", 2024, 12))
}

func TestComposeInvoice(t *testing.T) {
	sessions := []domain.WorkSession{
		session("late", "c1", date(2024, time.March, 20), "1.5", "22.5"),
		session("early", "c1", date(2024, time.March, 5), "2", "30"),
	}
	expenses := []domain.Expense{
		expense("e1", "c1", date(2024, time.March, 6), "4.99"),
	}
	cfg := domain.DefaultBusinessConfig()
	client := domain.Client{ID: "c1", Name: "Mrs Smith", Address: "1 High St\nTown"}
	issued := time.Date(2024, time.April, 2, 11, 0, 0, 0, time.UTC)

	inv := domain.ComposeInvoice(sessions, expenses, 2024, 3, cfg, client, issued)

	assert.Equal(t, "INV-202403", inv.Number)
	assert.Equal(t, "March 2024", inv.PeriodLabel)
	assert.Equal(t, issued, inv.IssuedOn)
	assert.Equal(t, issued.AddDate(0, 0, 14), inv.DueOn)
	assert.Equal(t, client, inv.Client)
	assert.Equal(t, domain.ComputeTotals(sessions, expenses), inv.Totals)

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, date(2024, time.March, 5), inv.Lines[0].Date)
	assert.Equal(t, "09:00", inv.Lines[0].Start)
	assert.Equal(t, "10:00", inv.Lines[0].End)

	require.Len(t, inv.ExpenseLines, 1)
	assert.Equal(t, domain.DefaultExpenseDescription, inv.ExpenseLines[0].Description)
}

func TestComposeInvoice_Empty(t *testing.T) {
	inv := domain.ComposeInvoice(nil, nil, 2024, 1, domain.DefaultBusinessConfig(), domain.Client{}, time.Now())
	assert.Empty(t, inv.Lines)
	assert.Empty(t, inv.ExpenseLines)
	assert.True(t, inv.Totals.Total.IsZero())
}

func TestResolveClient(t *testing.T) {
	clients := []domain.Client{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	assert.Equal(t, "B", domain.ResolveClient(clients, "b").Name)
	assert.Equal(t, "A", domain.ResolveClient(clients, "missing").Name)

	placeholder := domain.ResolveClient(nil, "missing")
	assert.Equal(t, domain.DefaultClientID, placeholder.ID)
	assert.Equal(t, "Unknown", placeholder.Name)
}
