// Package client provides the Client catalog.
// Clients are the trading partners whose orders, payments, and
// monthly invoices the system tracks.
package client

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/entity"
	"tradebill/internal/core/types"
)

// Pre-compiled validation patterns
var (
	// GSTIN: 2-digit state code, 10-char PAN, entity code, "Z", checksum
	gstinRE   = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	pincodeRE = regexp.MustCompile(`^\d{6}$`)
	phoneRE   = regexp.MustCompile(`^[0-9+\-\s]{7,15}$`)
)

// Client represents a trading partner.
type Client struct {
	entity.Catalog

	// Address fields
	Address *string `db:"address" json:"address,omitempty"`
	City    *string `db:"city" json:"city,omitempty"`
	State   *string `db:"state" json:"state,omitempty"`
	Pincode *string `db:"pincode" json:"pincode,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// GSTNumber is the client's GST registration number
	GSTNumber *string `db:"gst_number" json:"gstNumber,omitempty"`

	// OpeningBalance is the ledger balance carried over at onboarding,
	// before any tracked order/payment history. Positive means the
	// client owes money. NULL reads as zero; invoice generation never
	// writes this field.
	OpeningBalance decimal.NullDecimal `db:"opening_balance" json:"openingBalance"`
}

// NewClient creates a Client with required fields.
func NewClient(code, name string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
	}
}

// OpeningBalanceOrZero returns the opening balance, treating NULL as zero.
func (c *Client) OpeningBalanceOrZero() types.Money {
	return types.MoneyOrZero(c.OpeningBalance)
}

// SetOpeningBalance sets a non-null opening balance.
func (c *Client) SetOpeningBalance(m types.Money) {
	c.OpeningBalance = decimal.NullDecimal{Decimal: m, Valid: true}
}

// Validate implements entity.Validatable.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.GSTNumber != nil && *c.GSTNumber != "" && !gstinRE.MatchString(*c.GSTNumber) {
		return apperror.NewValidation("invalid GST number format").
			WithDetail("field", "gstNumber")
	}

	if c.Pincode != nil && *c.Pincode != "" && !pincodeRE.MatchString(*c.Pincode) {
		return apperror.NewValidation("pincode must be 6 digits").
			WithDetail("field", "pincode")
	}

	if c.Phone != nil && *c.Phone != "" && !phoneRE.MatchString(*c.Phone) {
		return apperror.NewValidation("invalid phone format").
			WithDetail("field", "phone")
	}

	return nil
}
