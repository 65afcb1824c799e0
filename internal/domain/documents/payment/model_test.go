package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tradebill/internal/core/id"
)

func TestPayment_Validate(t *testing.T) {
	ctx := context.Background()

	p := New(id.New())
	p.Amount = decimal.NullDecimal{Decimal: decimal.NewFromInt(1000), Valid: true}
	p.Mode = ModeUPI
	assert.NoError(t, p.Validate(ctx))

	noClient := &Payment{}
	assert.Error(t, noClient.Validate(ctx))

	negative := New(id.New())
	negative.Amount = decimal.NullDecimal{Decimal: decimal.NewFromInt(-5), Valid: true}
	assert.Error(t, negative.Validate(ctx))

	badMode := New(id.New())
	badMode.Mode = Mode("barter")
	assert.Error(t, badMode.Validate(ctx))
}

func TestPayment_AmountOrZero(t *testing.T) {
	p := New(id.New())
	assert.True(t, p.AmountOrZero().IsZero())

	p.Amount = decimal.NullDecimal{Decimal: decimal.NewFromInt(250), Valid: true}
	assert.True(t, p.AmountOrZero().Equal(decimal.NewFromInt(250)))
}
