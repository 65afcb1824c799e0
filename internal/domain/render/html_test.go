package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/billing"
	"tradebill/internal/domain/company"
)

func testView() *billing.InvoiceView {
	addr := "12 Market Road"
	co := &company.Settings{
		ID:                id.New(),
		CompanyName:       "Shree Traders",
		Address:           &addr,
		InvoicePrefix:     "INV",
		NextInvoiceNumber: 2,
	}

	balance := billing.Balance{
		OrdersTotal:     types.MustMoney("30000"),
		PreviousBalance: types.MustMoney("15000"),
		PaymentsTotal:   types.MustMoney("5000"),
		FinalPayable:    types.MustMoney("40000"),
	}

	items := []billing.LineItem{
		{
			OrderID:  id.New(),
			Date:     time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			Material: "Sand",
			Weight:   types.MustMoney("10.5"),
			Rate:     types.MustMoney("1000"),
			Amount:   types.MustMoney("10500"),
		},
	}

	view, err := billing.Assemble(
		co,
		billing.ClientInfo{ID: id.New(), Name: "Acme Logistics", City: "Pune"},
		types.Period{Year: 2026, Month: time.March},
		items,
		balance,
		"INV-1",
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return view
}

func TestHTMLRenderer(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	data, contentType, err := r.Render(context.Background(), testView())
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", contentType)

	html := string(data)

	// Identity and period
	assert.Contains(t, html, "Shree Traders")
	assert.Contains(t, html, "Acme Logistics")
	assert.Contains(t, html, "INV-1")
	assert.Contains(t, html, "March 2026")

	// Computed figures are formatted, never recomputed
	assert.Contains(t, html, "₹30,000.00")
	assert.Contains(t, html, "₹15,000.00")
	assert.Contains(t, html, "₹45,000.00") // subtotal
	assert.Contains(t, html, "₹40,000.00")
	assert.Contains(t, html, "Forty Thousand Rupees Only")

	// Line item row
	assert.Contains(t, html, "10.500 MT")
	assert.Contains(t, html, "Sand")
	assert.Contains(t, html, "05-03-2026")
}

func TestHTMLRenderer_NegativeBalanceDisplayed(t *testing.T) {
	view := testView()
	view.Balance.FinalPayable = types.MustMoney("-1500")
	view.GrandTotal = view.Balance.FinalPayable
	view.AmountInWords = billing.RupeesInWords(view.GrandTotal)

	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	data, _, err := r.Render(context.Background(), view)
	require.NoError(t, err)

	// Credit is shown signed, not clamped to zero.
	assert.Contains(t, string(data), "-₹1,500.00")
	assert.NotContains(t, string(data), ">₹0.00<")
}

func TestExcelRenderer(t *testing.T) {
	r := NewExcelRenderer()

	data, contentType, err := r.Render(context.Background(), testView())
	require.NoError(t, err)
	assert.Equal(t, xlsxContentType, contentType)

	// XLSX files are zip archives.
	require.Greater(t, len(data), 4)
	assert.True(t, strings.HasPrefix(string(data[:2]), "PK"))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	html, err := NewHTMLRenderer()
	require.NoError(t, err)

	reg.Register(FormatHTML, html)
	reg.Register(FormatXLSX, NewExcelRenderer())

	r, ok := reg.Get(FormatHTML)
	assert.True(t, ok)
	assert.NotNil(t, r)

	_, ok = reg.Get(Format("pdf"))
	assert.False(t, ok)
}
