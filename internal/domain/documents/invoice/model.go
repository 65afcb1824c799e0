// Package invoice provides the persisted Invoice document: an
// immutable snapshot of one generated monthly invoice and its line
// items. Figures are frozen at generation time and never recomputed
// from the snapshot.
package invoice

import (
	"context"
	"time"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/entity"
	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
)

// Invoice is the stored header of a generated invoice.
type Invoice struct {
	entity.Document

	// ClientID references the billed client
	ClientID id.ID `db:"client_id" json:"clientId"`

	// PeriodKey is the billed month in "YYYY-MM" form
	PeriodKey string `db:"period_key" json:"periodKey"`

	// Frozen reconciliation figures
	OrdersTotal     types.Money `db:"orders_total" json:"ordersTotal"`
	PreviousBalance types.Money `db:"previous_balance" json:"previousBalance"`
	PaymentsTotal   types.Money `db:"payments_total" json:"paymentsTotal"`
	FinalPayable    types.Money `db:"final_payable" json:"finalPayable"`

	// AmountInWords is the spelled-out final payable
	AmountInWords string `db:"amount_in_words" json:"amountInWords"`

	// Table part: billed orders in ledger order
	Items []Item `db:"-" json:"items"`
}

// Item is one stored invoice line.
type Item struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	// OrderID references the billed order
	OrderID id.ID `db:"order_id" json:"orderId"`

	Date     time.Time   `db:"date" json:"date"`
	Material string      `db:"material" json:"material"`
	Weight   types.Money `db:"weight" json:"weight"`
	Rate     types.Money `db:"rate" json:"rate"`
	Amount   types.Money `db:"amount" json:"amount"`
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(inv.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if _, err := types.ParsePeriod(inv.PeriodKey); err != nil {
		return apperror.NewValidation("period key must be YYYY-MM").
			WithDetail("field", "periodKey").
			WithDetail("value", inv.PeriodKey)
	}

	return nil
}

// ListFilter narrows invoice list queries.
type ListFilter struct {
	ClientID  *id.ID
	PeriodKey string

	Limit  int
	Offset int
}
