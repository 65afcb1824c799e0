package dto

import (
	"github.com/shopspring/decimal"

	"tradebill/internal/domain/catalogs/client"
)

// --- Request DTOs ---

// CreateClientRequest is the request body for creating a client.
type CreateClientRequest struct {
	Code           string           `json:"code"`
	Name           string           `json:"name" binding:"required"`
	Address        *string          `json:"address"`
	City           *string          `json:"city"`
	State          *string          `json:"state"`
	Pincode        *string          `json:"pincode"`
	Phone          *string          `json:"phone"`
	GSTNumber      *string          `json:"gstNumber"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateClientRequest) ToEntity() *client.Client {
	cl := client.NewClient(r.Code, r.Name)
	cl.Address = r.Address
	cl.City = r.City
	cl.State = r.State
	cl.Pincode = r.Pincode
	cl.Phone = r.Phone
	cl.GSTNumber = r.GSTNumber
	if r.OpeningBalance != nil {
		cl.SetOpeningBalance(*r.OpeningBalance)
	}
	return cl
}

// UpdateClientRequest is the request body for updating a client.
type UpdateClientRequest struct {
	Code           string           `json:"code"`
	Name           string           `json:"name" binding:"required"`
	Address        *string          `json:"address"`
	City           *string          `json:"city"`
	State          *string          `json:"state"`
	Pincode        *string          `json:"pincode"`
	Phone          *string          `json:"phone"`
	GSTNumber      *string          `json:"gstNumber"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
	Version        int              `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateClientRequest) ApplyTo(cl *client.Client) {
	cl.Code = r.Code
	cl.Name = r.Name
	cl.Address = r.Address
	cl.City = r.City
	cl.State = r.State
	cl.Pincode = r.Pincode
	cl.Phone = r.Phone
	cl.GSTNumber = r.GSTNumber
	cl.OpeningBalance = decimal.NullDecimal{}
	if r.OpeningBalance != nil {
		cl.SetOpeningBalance(*r.OpeningBalance)
	}
	cl.Version = r.Version
}

// --- Response DTOs ---

// ClientResponse is the response body for a client.
type ClientResponse struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Address        *string          `json:"address,omitempty"`
	City           *string          `json:"city,omitempty"`
	State          *string          `json:"state,omitempty"`
	Pincode        *string          `json:"pincode,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	GSTNumber      *string          `json:"gstNumber,omitempty"`
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
	DeletionMark   bool             `json:"deletionMark"`
	Version        int              `json:"version"`
}

// FromClient creates response DTO from domain entity.
func FromClient(cl *client.Client) *ClientResponse {
	resp := &ClientResponse{
		ID:           cl.ID.String(),
		Code:         cl.Code,
		Name:         cl.Name,
		Address:      cl.Address,
		City:         cl.City,
		State:        cl.State,
		Pincode:      cl.Pincode,
		Phone:        cl.Phone,
		GSTNumber:    cl.GSTNumber,
		DeletionMark: cl.DeletionMark,
		Version:      cl.Version,
	}
	if cl.OpeningBalance.Valid {
		d := cl.OpeningBalance.Decimal
		resp.OpeningBalance = &d
	}
	return resp
}
