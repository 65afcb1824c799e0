package dto

import (
	"time"

	"tradebill/internal/domain/company"
)

// UpdateCompanyRequest is the request body for updating company settings.
type UpdateCompanyRequest struct {
	CompanyName       string  `json:"companyName" binding:"required"`
	Address           *string `json:"address"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"`
	BankName          *string `json:"bankName"`
	BankAccount       *string `json:"bankAccount"`
	BankIFSC          *string `json:"bankIfsc"`
	UPIID             *string `json:"upiId"`
	InvoicePrefix     string  `json:"invoicePrefix"`
	NextInvoiceNumber int64   `json:"nextInvoiceNumber"`
	Version           int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing settings.
func (r *UpdateCompanyRequest) ApplyTo(s *company.Settings) {
	s.CompanyName = r.CompanyName
	s.Address = r.Address
	s.Phone = r.Phone
	s.Email = r.Email
	s.BankName = r.BankName
	s.BankAccount = r.BankAccount
	s.BankIFSC = r.BankIFSC
	s.UPIID = r.UPIID
	s.InvoicePrefix = r.InvoicePrefix
	if r.NextInvoiceNumber > 0 {
		s.NextInvoiceNumber = r.NextInvoiceNumber
	}
	s.Version = r.Version
}

// CompanyResponse is the response body for company settings.
type CompanyResponse struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	Address           *string   `json:"address,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Email             *string   `json:"email,omitempty"`
	BankName          *string   `json:"bankName,omitempty"`
	BankAccount       *string   `json:"bankAccount,omitempty"`
	BankIFSC          *string   `json:"bankIfsc,omitempty"`
	UPIID             *string   `json:"upiId,omitempty"`
	InvoicePrefix     string    `json:"invoicePrefix"`
	NextInvoiceNumber int64     `json:"nextInvoiceNumber"`
	Version           int       `json:"version"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// FromSettings creates response DTO from domain settings.
func FromSettings(s *company.Settings) *CompanyResponse {
	return &CompanyResponse{
		ID:                s.ID.String(),
		CompanyName:       s.CompanyName,
		Address:           s.Address,
		Phone:             s.Phone,
		Email:             s.Email,
		BankName:          s.BankName,
		BankAccount:       s.BankAccount,
		BankIFSC:          s.BankIFSC,
		UPIID:             s.UPIID,
		InvoicePrefix:     s.InvoicePrefix,
		NextInvoiceNumber: s.NextInvoiceNumber,
		Version:           s.Version,
		UpdatedAt:         s.UpdatedAt,
	}
}
