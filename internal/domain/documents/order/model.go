// Package order provides the Order document: one delivery of
// material to a client, billed on the client's monthly invoice.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/entity"
	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
)

// Order represents a single delivery entry in the client's ledger.
type Order struct {
	entity.Document

	// ClientID references the billed client
	ClientID id.ID `db:"client_id" json:"clientId"`

	// MaterialID optionally references the rate card entry
	MaterialID *id.ID `db:"material_id" json:"materialId,omitempty"`

	// Material is the display name of the delivered material
	Material string `db:"material" json:"material"`

	// Weight in metric tonnes, displayed to three decimals
	Weight decimal.NullDecimal `db:"weight" json:"weight"`

	// Rate per tonne agreed for this delivery
	Rate decimal.NullDecimal `db:"rate" json:"rate"`

	// Total is the stored line amount. weight*rate is expected but
	// the stored value stays authoritative for billing.
	Total decimal.NullDecimal `db:"total" json:"total"`
}

// New creates an Order for the given client dated now.
func New(clientID id.ID) *Order {
	return &Order{
		Document: entity.NewDocument(),
		ClientID: clientID,
	}
}

// TotalOrZero returns the stored total, treating NULL as zero.
func (o *Order) TotalOrZero() types.Money {
	return types.MoneyOrZero(o.Total)
}

// WeightOrZero returns the weight, treating NULL as zero.
func (o *Order) WeightOrZero() types.Money {
	return types.MoneyOrZero(o.Weight)
}

// RateOrZero returns the rate, treating NULL as zero.
func (o *Order) RateOrZero() types.Money {
	return types.MoneyOrZero(o.Rate)
}

// ComputeTotal fills Total from Weight and Rate when both are set.
func (o *Order) ComputeTotal() {
	if o.Weight.Valid && o.Rate.Valid {
		o.Total = decimal.NullDecimal{
			Decimal: o.Weight.Decimal.Mul(o.Rate.Decimal),
			Valid:   true,
		}
	}
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(o.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if o.Weight.Valid && o.Weight.Decimal.IsNegative() {
		return apperror.NewValidation("weight cannot be negative").
			WithDetail("field", "weight")
	}

	if o.Rate.Valid && o.Rate.Decimal.IsNegative() {
		return apperror.NewValidation("rate cannot be negative").
			WithDetail("field", "rate")
	}

	return nil
}

// ListFilter narrows order list queries.
type ListFilter struct {
	ClientID *id.ID
	DateFrom *time.Time
	DateTo   *time.Time

	Limit  int
	Offset int
}
