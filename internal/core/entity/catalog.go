package entity

import (
	"context"

	"tradebill/internal/core/apperror"
)

// Catalog is the base type for reference data.
// Examples: Clients, Materials.
type Catalog struct {
	BaseCatalog

	// Code is a human-readable identifier, unique per catalog
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a Catalog with a generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseCatalog: NewBaseCatalog(),
		Code:        code,
		Name:        name,
	}
}

// Validate implements the Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code may be auto-generated by a before-create hook,
	// so it is optional at creation time.

	return nil
}
