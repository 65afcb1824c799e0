package dto

import (
	"github.com/shopspring/decimal"

	"tradebill/internal/domain/catalogs/material"
)

// CreateMaterialRequest is the request body for creating a material.
type CreateMaterialRequest struct {
	Code string           `json:"code"`
	Name string           `json:"name" binding:"required"`
	Unit string           `json:"unit"`
	Rate *decimal.Decimal `json:"rate"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMaterialRequest) ToEntity() *material.Material {
	m := material.NewMaterial(r.Code, r.Name)
	if r.Unit != "" {
		m.Unit = r.Unit
	}
	if r.Rate != nil {
		m.Rate = decimal.NullDecimal{Decimal: *r.Rate, Valid: true}
	}
	return m
}

// UpdateMaterialRequest is the request body for updating a material.
type UpdateMaterialRequest struct {
	Code    string           `json:"code"`
	Name    string           `json:"name" binding:"required"`
	Unit    string           `json:"unit"`
	Rate    *decimal.Decimal `json:"rate"`
	Version int              `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMaterialRequest) ApplyTo(m *material.Material) {
	m.Code = r.Code
	m.Name = r.Name
	if r.Unit != "" {
		m.Unit = r.Unit
	}
	m.Rate = decimal.NullDecimal{}
	if r.Rate != nil {
		m.Rate = decimal.NullDecimal{Decimal: *r.Rate, Valid: true}
	}
	m.Version = r.Version
}

// MaterialResponse is the response body for a material.
type MaterialResponse struct {
	ID           string           `json:"id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	Rate         *decimal.Decimal `json:"rate,omitempty"`
	DeletionMark bool             `json:"deletionMark"`
	Version      int              `json:"version"`
}

// FromMaterial creates response DTO from domain entity.
func FromMaterial(m *material.Material) *MaterialResponse {
	resp := &MaterialResponse{
		ID:           m.ID.String(),
		Code:         m.Code,
		Name:         m.Name,
		Unit:         m.Unit,
		DeletionMark: m.DeletionMark,
		Version:      m.Version,
	}
	if m.Rate.Valid {
		d := m.Rate.Decimal
		resp.Rate = &d
	}
	return resp
}
