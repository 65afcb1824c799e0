// Package company provides the company settings singleton: the
// issuing company's identity, bank details, and invoice numbering
// preferences printed on every generated invoice.
package company

import (
	"context"
	"time"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
)

// Settings is the single company profile row.
type Settings struct {
	ID id.ID `db:"id" json:"id"`

	CompanyName string  `db:"company_name" json:"companyName"`
	Address     *string `db:"address" json:"address,omitempty"`
	Phone       *string `db:"phone" json:"phone,omitempty"`
	Email       *string `db:"email" json:"email,omitempty"`

	// Bank details printed in the invoice footer
	BankName    *string `db:"bank_name" json:"bankName,omitempty"`
	BankAccount *string `db:"bank_account" json:"bankAccount,omitempty"`
	BankIFSC    *string `db:"bank_ifsc" json:"bankIfsc,omitempty"`
	UPIID       *string `db:"upi_id" json:"upiId,omitempty"`

	// InvoicePrefix feeds the invoice numerator ("INV" by default).
	// NextInvoiceNumber mirrors the sequence for display; the
	// numerator sequence is authoritative.
	InvoicePrefix     string `db:"invoice_prefix" json:"invoicePrefix"`
	NextInvoiceNumber int64  `db:"next_invoice_number" json:"nextInvoiceNumber"`

	Version   int       `db:"version" json:"version"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate checks settings invariants.
func (s *Settings) Validate(ctx context.Context) error {
	if s.CompanyName == "" {
		return apperror.NewValidation("company name is required").
			WithDetail("field", "companyName")
	}
	if s.NextInvoiceNumber < 1 {
		return apperror.NewValidation("next invoice number must be at least 1").
			WithDetail("field", "nextInvoiceNumber")
	}
	return nil
}

// PrefixOrDefault returns the invoice prefix, defaulting to "INV".
func (s *Settings) PrefixOrDefault() string {
	if s.InvoicePrefix == "" {
		return "INV"
	}
	return s.InvoicePrefix
}
