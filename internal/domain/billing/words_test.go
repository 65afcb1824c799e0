package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradebill/internal/core/types"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{10, "Ten"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1001, "One Thousand One"},
		{40000, "Forty Thousand"},
		{100000, "One Lakh"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six"},
		{10000000, "One Crore"},
		{10000001, "One Crore One"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{230000000, "Twenty Three Crore"},
		{1000000000, "One Hundred Crore"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountInWords(tt.n), "n=%d", tt.n)
	}
}

func TestRupeesInWords(t *testing.T) {
	assert.Equal(t, "Forty Thousand Rupees Only", RupeesInWords(types.MustMoney("40000")))

	// Paise are truncated, not rounded.
	assert.Equal(t, "Forty Thousand Rupees Only", RupeesInWords(types.MustMoney("40000.99")))

	// Credits spell the absolute value; the sign stays on the figure.
	assert.Equal(t, "One Thousand Five Hundred Rupees Only", RupeesInWords(types.MustMoney("-1500")))

	assert.Equal(t, "Zero Rupees Only", RupeesInWords(types.Zero()))
}
