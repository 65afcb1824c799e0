// Package material provides the Material rate card catalog.
// Materials carry the default per-unit rate suggested at order entry;
// the stored order total remains authoritative for billing.
package material

import (
	"context"

	"github.com/shopspring/decimal"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/entity"
	"tradebill/internal/core/types"
)

// Material represents one traded material and its current rate.
type Material struct {
	entity.Catalog

	// Unit of measure, metric tonnes by default
	Unit string `db:"unit" json:"unit"`

	// Rate is the current price per unit
	Rate decimal.NullDecimal `db:"rate" json:"rate"`
}

// DefaultUnit is the unit assumed when none is given.
const DefaultUnit = "MT"

// NewMaterial creates a Material with required fields.
func NewMaterial(code, name string) *Material {
	return &Material{
		Catalog: entity.NewCatalog(code, name),
		Unit:    DefaultUnit,
	}
}

// RateOrZero returns the current rate, treating NULL as zero.
func (m *Material) RateOrZero() types.Money {
	return types.MoneyOrZero(m.Rate)
}

// Validate implements entity.Validatable.
func (m *Material) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}

	if m.Unit == "" {
		m.Unit = DefaultUnit
	}

	if m.Rate.Valid && m.Rate.Decimal.IsNegative() {
		return apperror.NewValidation("rate cannot be negative").
			WithDetail("field", "rate")
	}

	return nil
}
