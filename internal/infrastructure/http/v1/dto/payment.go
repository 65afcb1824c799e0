package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/domain/documents/payment"
)

// CreatePaymentRequest is the request body for creating a payment.
type CreatePaymentRequest struct {
	ClientID  string           `json:"clientId" binding:"required,uuid"`
	Date      *time.Time       `json:"date"`
	Amount    *decimal.Decimal `json:"amount"`
	Mode      string           `json:"mode"`
	Reference *string          `json:"reference"`
	Comment   string           `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePaymentRequest) ToEntity() (*payment.Payment, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, apperror.NewValidation("invalid client id").
			WithDetail("field", "clientId")
	}

	p := payment.New(clientID)
	if r.Date != nil {
		p.Date = *r.Date
	}
	p.Amount = toNullDecimal(r.Amount)
	p.Mode = payment.Mode(r.Mode)
	p.Reference = r.Reference
	p.Comment = r.Comment
	return p, nil
}

// UpdatePaymentRequest is the request body for updating a payment.
type UpdatePaymentRequest struct {
	Date      *time.Time       `json:"date"`
	Amount    *decimal.Decimal `json:"amount"`
	Mode      string           `json:"mode"`
	Reference *string          `json:"reference"`
	Comment   string           `json:"comment"`
	Version   int              `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePaymentRequest) ApplyTo(p *payment.Payment) {
	if r.Date != nil {
		p.Date = *r.Date
	}
	p.Amount = toNullDecimal(r.Amount)
	p.Mode = payment.Mode(r.Mode)
	p.Reference = r.Reference
	p.Comment = r.Comment
	p.Version = r.Version
}

// PaymentResponse is the response body for a payment.
type PaymentResponse struct {
	ID           string           `json:"id"`
	Number       string           `json:"number"`
	Date         time.Time        `json:"date"`
	ClientID     string           `json:"clientId"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Mode         string           `json:"mode,omitempty"`
	Reference    *string          `json:"reference,omitempty"`
	Comment      string           `json:"comment,omitempty"`
	DeletionMark bool             `json:"deletionMark"`
	Version      int              `json:"version"`
}

// FromPayment creates response DTO from domain entity.
func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:           p.ID.String(),
		Number:       p.Number,
		Date:         p.Date,
		ClientID:     p.ClientID.String(),
		Amount:       fromNullDecimal(p.Amount),
		Mode:         string(p.Mode),
		Reference:    p.Reference,
		Comment:      p.Comment,
		DeletionMark: p.DeletionMark,
		Version:      p.Version,
	}
}
