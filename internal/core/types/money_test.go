package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"1", "₹1.00"},
		{"999", "₹999.00"},
		{"1000", "₹1,000.00"},
		{"99999", "₹99,999.00"},
		{"100000", "₹1,00,000.00"},
		{"1234567.5", "₹12,34,567.50"},
		{"10000000", "₹1,00,00,000.00"},
		{"123456789.99", "₹12,34,56,789.99"},
		{"-1234567.5", "-₹12,34,567.50"},
		{"-500", "-₹500.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(MustMoney(tt.in)), "in=%s", tt.in)
	}
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "12.500", FormatWeight(MustMoney("12.5")))
	assert.Equal(t, "0.000", FormatWeight(Zero()))
	assert.Equal(t, "8.255", FormatWeight(MustMoney("8.255")))
	assert.Equal(t, "0.048", FormatWeight(MustMoney("0.048")))
}

func TestMoneyOrZero(t *testing.T) {
	assert.True(t, MoneyOrZero(decimal.NullDecimal{}).IsZero())

	val := decimal.NullDecimal{Decimal: MustMoney("42.50"), Valid: true}
	assert.True(t, MoneyOrZero(val).Equal(MustMoney("42.50")))
}
