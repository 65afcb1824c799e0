// Package payment provides the Payment document: money received
// from a client, credited against the running balance.
package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/entity"
	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
)

// Mode identifies how a payment was received.
type Mode string

const (
	ModeCash     Mode = "cash"
	ModeBank     Mode = "bank"
	ModeUPI      Mode = "upi"
	ModeCheque   Mode = "cheque"
	ModeAdjusted Mode = "adjusted"
)

// Payment represents money received from a client.
type Payment struct {
	entity.Document

	// ClientID references the paying client
	ClientID id.ID `db:"client_id" json:"clientId"`

	// Amount received, non-negative
	Amount decimal.NullDecimal `db:"amount" json:"amount"`

	// Mode of payment
	Mode Mode `db:"mode" json:"mode,omitempty"`

	// Reference is a free-form transaction reference (UTR, cheque no.)
	Reference *string `db:"reference" json:"reference,omitempty"`
}

// New creates a Payment for the given client dated now.
func New(clientID id.ID) *Payment {
	return &Payment{
		Document: entity.NewDocument(),
		ClientID: clientID,
	}
}

// AmountOrZero returns the amount, treating NULL as zero.
func (p *Payment) AmountOrZero() types.Money {
	return types.MoneyOrZero(p.Amount)
}

// Validate implements entity.Validatable.
func (p *Payment) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if p.Amount.Valid && p.Amount.Decimal.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}

	if p.Mode != "" && !isValidMode(p.Mode) {
		return apperror.NewValidation("invalid payment mode").
			WithDetail("field", "mode").
			WithDetail("value", string(p.Mode))
	}

	return nil
}

func isValidMode(m Mode) bool {
	switch m {
	case ModeCash, ModeBank, ModeUPI, ModeCheque, ModeAdjusted:
		return true
	}
	return false
}

// ListFilter narrows payment list queries.
type ListFilter struct {
	ClientID *id.ID
	DateFrom *time.Time
	DateTo   *time.Time

	Limit  int
	Offset int
}
