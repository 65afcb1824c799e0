package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/domain/documents/order"
)

// CreateOrderRequest is the request body for creating an order.
type CreateOrderRequest struct {
	ClientID   string           `json:"clientId" binding:"required,uuid"`
	MaterialID *string          `json:"materialId"`
	Material   string           `json:"material"`
	Date       *time.Time       `json:"date"`
	Weight     *decimal.Decimal `json:"weight"`
	Rate       *decimal.Decimal `json:"rate"`
	Total      *decimal.Decimal `json:"total"`
	Comment    string           `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrderRequest) ToEntity() (*order.Order, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, apperror.NewValidation("invalid client id").
			WithDetail("field", "clientId")
	}

	o := order.New(clientID)
	o.Material = r.Material
	o.Comment = r.Comment
	if r.Date != nil {
		o.Date = *r.Date
	}
	if r.MaterialID != nil {
		mid, err := id.Parse(*r.MaterialID)
		if err != nil {
			return nil, apperror.NewValidation("invalid material id").
				WithDetail("field", "materialId")
		}
		o.MaterialID = &mid
	}
	o.Weight = toNullDecimal(r.Weight)
	o.Rate = toNullDecimal(r.Rate)
	o.Total = toNullDecimal(r.Total)
	if !o.Total.Valid {
		o.ComputeTotal()
	}
	return o, nil
}

// UpdateOrderRequest is the request body for updating an order.
type UpdateOrderRequest struct {
	MaterialID *string          `json:"materialId"`
	Material   string           `json:"material"`
	Date       *time.Time       `json:"date"`
	Weight     *decimal.Decimal `json:"weight"`
	Rate       *decimal.Decimal `json:"rate"`
	Total      *decimal.Decimal `json:"total"`
	Comment    string           `json:"comment"`
	Version    int              `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOrderRequest) ApplyTo(o *order.Order) error {
	o.Material = r.Material
	o.Comment = r.Comment
	if r.Date != nil {
		o.Date = *r.Date
	}
	o.MaterialID = nil
	if r.MaterialID != nil {
		mid, err := id.Parse(*r.MaterialID)
		if err != nil {
			return apperror.NewValidation("invalid material id").
				WithDetail("field", "materialId")
		}
		o.MaterialID = &mid
	}
	o.Weight = toNullDecimal(r.Weight)
	o.Rate = toNullDecimal(r.Rate)
	o.Total = toNullDecimal(r.Total)
	if !o.Total.Valid {
		o.ComputeTotal()
	}
	o.Version = r.Version
	return nil
}

// OrderResponse is the response body for an order.
type OrderResponse struct {
	ID           string           `json:"id"`
	Number       string           `json:"number"`
	Date         time.Time        `json:"date"`
	ClientID     string           `json:"clientId"`
	MaterialID   *string          `json:"materialId,omitempty"`
	Material     string           `json:"material"`
	Weight       *decimal.Decimal `json:"weight,omitempty"`
	Rate         *decimal.Decimal `json:"rate,omitempty"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	Comment      string           `json:"comment,omitempty"`
	DeletionMark bool             `json:"deletionMark"`
	Version      int              `json:"version"`
}

// FromOrder creates response DTO from domain entity.
func FromOrder(o *order.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:           o.ID.String(),
		Number:       o.Number,
		Date:         o.Date,
		ClientID:     o.ClientID.String(),
		Material:     o.Material,
		Weight:       fromNullDecimal(o.Weight),
		Rate:         fromNullDecimal(o.Rate),
		Total:        fromNullDecimal(o.Total),
		Comment:      o.Comment,
		DeletionMark: o.DeletionMark,
		Version:      o.Version,
	}
	if o.MaterialID != nil {
		s := o.MaterialID.String()
		resp.MaterialID = &s
	}
	return resp
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}
