// Package billing implements the balance-reconciliation core: the
// pure computation that turns a client's ledger history into the
// figures printed on a monthly invoice, plus the amount-in-words
// conversion and the invoice view assembly.
package billing

import (
	"context"
	"time"

	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/company"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/domain/documents/payment"
)

// Balance holds the reconciled figures for one client and period.
// Derived, never persisted by the calculator itself.
type Balance struct {
	// Current-period sums
	OrdersTotal   types.Money
	PaymentsTotal types.Money

	// Prior-history sums (strictly before the period)
	PreviousOrdersTotal   types.Money
	PreviousPaymentsTotal types.Money

	// PreviousBalance = opening + previous orders - previous payments
	PreviousBalance types.Money

	// FinalPayable = current orders + previous balance - current payments.
	// Negative means the client carries a credit; it is never clamped.
	FinalPayable types.Money
}

// LineItem is one billable row in the invoice table, in ledger order.
type LineItem struct {
	OrderID  id.ID
	Date     time.Time
	Material string
	Weight   types.Money
	Rate     types.Money
	Amount   types.Money
}

// ClientInfo is the client block printed on the invoice.
type ClientInfo struct {
	ID        id.ID
	Name      string
	Address   string
	City      string
	State     string
	Pincode   string
	Phone     string
	GSTNumber string
}

// InvoiceView is the immutable model handed to renderers. It is
// constructed per generation request and consumed once; renderers
// format its numbers but never re-derive them.
type InvoiceView struct {
	Company *company.Settings
	Client  ClientInfo

	Period      types.Period
	PeriodLabel string

	InvoiceNumber string
	InvoiceDate   time.Time

	Items []LineItem

	Balance Balance

	// GrandTotal is the canonical document total: always FinalPayable,
	// the reconciled figure including previous balance.
	GrandTotal types.Money

	// AmountInWords spells out the grand total, e.g.
	// "Forty Thousand Rupees Only".
	AmountInWords string
}

// Subtotal returns OrdersTotal + PreviousBalance, the figure shown
// on the invoice before payments are deducted.
func (v *InvoiceView) Subtotal() types.Money {
	return v.Balance.OrdersTotal.Add(v.Balance.PreviousBalance)
}

// LedgerReader is the data-access capability the billing service
// consumes. Implementations return records in ascending date order.
type LedgerReader interface {
	OrdersForPeriod(ctx context.Context, clientID id.ID, period types.Period) ([]*order.Order, error)
	OrdersBefore(ctx context.Context, clientID id.ID, cutoff time.Time) ([]*order.Order, error)
	PaymentsForPeriod(ctx context.Context, clientID id.ID, period types.Period) ([]*payment.Payment, error)
	PaymentsBefore(ctx context.Context, clientID id.ID, cutoff time.Time) ([]*payment.Payment, error)
}
