package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/company"
)

func testCompany() *company.Settings {
	return &company.Settings{
		ID:                id.New(),
		CompanyName:       "Shree Traders",
		InvoicePrefix:     "INV",
		NextInvoiceNumber: 1,
	}
}

func testClientInfo() ClientInfo {
	return ClientInfo{
		ID:   id.New(),
		Name: "Acme Logistics",
		City: "Pune",
	}
}

func testItems() []LineItem {
	return []LineItem{
		{
			OrderID:  id.New(),
			Date:     day(2026, time.March, 5),
			Material: "Sand",
			Weight:   types.MustMoney("10.500"),
			Rate:     types.MustMoney("1000"),
			Amount:   types.MustMoney("10500"),
		},
		{
			OrderID:  id.New(),
			Date:     day(2026, time.March, 20),
			Material: "Gravel",
			Weight:   types.MustMoney("19.500"),
			Rate:     types.MustMoney("1000"),
			Amount:   types.MustMoney("19500"),
		},
	}
}

func TestAssemble(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}
	items := testItems()
	balance := Balance{
		OrdersTotal:     types.MustMoney("30000"),
		PreviousBalance: types.MustMoney("15000"),
		PaymentsTotal:   types.MustMoney("5000"),
		FinalPayable:    types.MustMoney("40000"),
	}

	view, err := Assemble(testCompany(), testClientInfo(), period, items, balance, "INV-1", day(2026, time.April, 1))
	require.NoError(t, err)

	assert.Equal(t, "INV-1", view.InvoiceNumber)
	assert.Equal(t, "March 2026", view.PeriodLabel)

	// The canonical grand total is the reconciled final payable.
	assert.True(t, view.GrandTotal.Equal(balance.FinalPayable))
	assert.Equal(t, "Forty Thousand Rupees Only", view.AmountInWords)

	// Line items keep ledger order and must sum to the orders total.
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Sand", view.Items[0].Material)
	assert.Equal(t, "Gravel", view.Items[1].Material)

	sum := types.Zero()
	for _, it := range view.Items {
		sum = sum.Add(it.Amount)
	}
	assert.True(t, sum.Equal(balance.OrdersTotal))
}

func TestAssemble_PreconditionFailures(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}
	now := day(2026, time.April, 1)

	_, err := Assemble(nil, testClientInfo(), period, testItems(), Balance{}, "INV-1", now)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeIncompleteInvoice, appErr.Code)
	assert.Equal(t, "company", appErr.Details["missing"])

	_, err = Assemble(testCompany(), ClientInfo{}, period, testItems(), Balance{}, "INV-1", now)
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, "client", appErr.Details["missing"])

	_, err = Assemble(testCompany(), testClientInfo(), period, nil, Balance{}, "INV-1", now)
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, "lineItems", appErr.Details["missing"])

	_, err = Assemble(testCompany(), testClientInfo(), period, testItems(), Balance{}, "", now)
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, "invoiceNumber", appErr.Details["missing"])
}

func TestAssemble_EmptyItemsAllowed(t *testing.T) {
	// A month with no deliveries still produces an invoice carrying
	// the previous balance; only a nil item list is a hard failure.
	period := types.Period{Year: 2026, Month: time.March}
	balance := Balance{
		OrdersTotal:     types.Zero(),
		PreviousBalance: types.MustMoney("15000"),
		PaymentsTotal:   types.Zero(),
		FinalPayable:    types.MustMoney("15000"),
	}

	view, err := Assemble(testCompany(), testClientInfo(), period, []LineItem{}, balance, "INV-2", day(2026, time.April, 1))
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.GrandTotal.Equal(types.MustMoney("15000")))
}

func TestAssemble_ViewIsACopy(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}
	items := testItems()

	view, err := Assemble(testCompany(), testClientInfo(), period, items, Balance{}, "INV-3", day(2026, time.April, 1))
	require.NoError(t, err)

	// Mutating the caller's slice must not change the view.
	items[0].Material = "changed"
	assert.Equal(t, "Sand", view.Items[0].Material)
}
