// Package types provides the value types shared across the domain:
// exact decimal money and the billing period.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with full precision.
// Uses decimal.Decimal so ledger sums never accumulate float drift.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// Prefer NewMoneyFromString when the source is textual.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString parses a Money value from its decimal string form.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney parses a Money value, panicking on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns the zero Money value.
func Zero() Money {
	return decimal.Zero
}

// MoneyOrZero coerces a nullable decimal to Money, treating
// NULL as zero. Ledger aggregation stays lenient: one dirty
// historical record must not block invoice generation.
func MoneyOrZero(n decimal.NullDecimal) Money {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

// FormatINR renders an amount with Indian digit grouping and the
// rupee sign: -1234567.5 → "-₹12,34,567.50". The first group from
// the right takes three digits, every following group two.
func FormatINR(m Money) string {
	neg := m.IsNegative()
	fixed := m.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupIndian(intPart)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(grouped)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatWeight renders a weight with three fractional digits, the
// precision used for metric-tonne quantities on printed documents.
func FormatWeight(m Money) string {
	return m.StringFixed(3)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
