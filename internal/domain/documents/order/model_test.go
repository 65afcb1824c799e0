package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebill/internal/core/id"
)

func TestOrder_ComputeTotal(t *testing.T) {
	o := New(id.New())
	o.Weight = decimal.NullDecimal{Decimal: decimal.RequireFromString("12.5"), Valid: true}
	o.Rate = decimal.NullDecimal{Decimal: decimal.NewFromInt(850), Valid: true}

	o.ComputeTotal()

	require.True(t, o.Total.Valid)
	assert.True(t, o.Total.Decimal.Equal(decimal.RequireFromString("10625")))
}

func TestOrder_ComputeTotal_MissingInputs(t *testing.T) {
	o := New(id.New())
	o.Weight = decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true}

	o.ComputeTotal()

	assert.False(t, o.Total.Valid, "total stays NULL when rate is NULL")
}

func TestOrder_TotalOrZero(t *testing.T) {
	o := New(id.New())
	assert.True(t, o.TotalOrZero().IsZero())

	o.Total = decimal.NullDecimal{Decimal: decimal.NewFromInt(500), Valid: true}
	assert.True(t, o.TotalOrZero().Equal(decimal.NewFromInt(500)))
}

func TestOrder_Validate(t *testing.T) {
	ctx := context.Background()

	o := New(id.New())
	o.Material = "River Sand"
	assert.NoError(t, o.Validate(ctx))

	missing := &Order{}
	assert.Error(t, missing.Validate(ctx), "date and client are required")

	negative := New(id.New())
	negative.Weight = decimal.NullDecimal{Decimal: decimal.NewFromInt(-1), Valid: true}
	assert.Error(t, negative.Validate(ctx))
}
