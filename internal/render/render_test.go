package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() *domain.Invoice {
	cfg := domain.DefaultBusinessConfig()
	cfg.BusinessName = "Sparkle & Shine"
	client := domain.Client{ID: "c1", Name: "Mrs <Jones>", Address: "1 High St\nLeeds, LS1 1AA"}
	sessions := []domain.WorkSession{{
		ID: "s1", ClientID: "c1", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 11, Minute: 30},
		Hours: decimal.RequireFromString("2.5"), Rate: decimal.NewFromInt(15), Amount: decimal.RequireFromString("37.5"),
	}}
	expenses := []domain.Expense{{
		ID: "e1", ClientID: "c1", Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("4.99"),
	}}
	return domain.ComposeInvoice(sessions, expenses, 2024, 3, cfg, client, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewHTMLRenderer()
	require.NoError(t, r.Render(&buf, sampleInvoice()))
	out := buf.String()

	assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
	assert.Contains(t, out, "INV-202403")
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "01/04/2024")
	assert.Contains(t, out, "15/04/2024", "due date uses payment terms")
	assert.Contains(t, out, "05/03/2024")
	assert.Contains(t, out, "09:00 - 11:30")
	assert.Contains(t, out, "£37.50")
	assert.Contains(t, out, "£4.99")
	assert.Contains(t, out, "£42.49")
	assert.Contains(t, out, "Cleaning supplies")
	assert.Contains(t, out, "1 High St<br>Leeds, LS1 1AA")
	assert.Contains(t, out, "Mrs &lt;Jones&gt;")
	assert.Contains(t, out, "Sparkle &amp; Shine")
}

func TestHTMLRenderer_EmptyMonth(t *testing.T) {
	inv := domain.ComposeInvoice(nil, nil, 2024, 2, domain.DefaultBusinessConfig(), domain.Client{Name: "X"}, time.Now())
	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().Render(&buf, inv))
	assert.Contains(t, buf.String(), "No work recorded for this period.")
	assert.NotContains(t, buf.String(), "<th>Expense</th>")
	assert.Contains(t, buf.String(), "£0.00")
}

func TestPDFRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewPDFRenderer()
	require.NoError(t, r.Render(&buf, sampleInvoice()))
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestForFormat(t *testing.T) {
	for _, tc := range []struct {
		format string
		want   string
	}{
		{"", "text/html; charset=utf-8"},
		{"HTML", "text/html; charset=utf-8"},
		{"pdf", "application/pdf"},
	} {
		r, err := ForFormat(tc.format)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.ContentType())
	}
	_, err := ForFormat("docx")
	assert.Error(t, err)
}

func TestAddressLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, addressLines("a\n\n b ", "c"))
}
