package billing

import (
	"strings"

	"tradebill/internal/core/types"
)

// Indian numbering word tables.
var (
	onesWords = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
		"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen",
		"Nineteen",
	}
	tensWords = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
		"Seventy", "Eighty", "Ninety",
	}
)

const (
	croreValue    = 10_000_000
	lakhValue     = 100_000
	thousandValue = 1_000
)

// AmountInWords converts a non-negative integer amount to words in
// the Indian numbering system (crore/lakh/thousand). Total over all
// non-negative inputs; zero maps to "Zero".
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	crore := n / croreValue
	lakh := (n % croreValue) / lakhValue
	thousand := (n % lakhValue) / thousandValue
	remainder := n % thousandValue

	var parts []string
	if crore > 0 {
		parts = append(parts, AmountInWords(crore), "Crore")
	}
	if lakh > 0 {
		parts = append(parts, underThousand(lakh), "Lakh")
	}
	if thousand > 0 {
		parts = append(parts, underThousand(thousand), "Thousand")
	}
	if remainder > 0 {
		parts = append(parts, underThousand(remainder))
	}

	return strings.Join(parts, " ")
}

// underThousand spells a value in [1, 999].
func underThousand(n int64) string {
	var parts []string

	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}

	switch {
	case n >= 20:
		word := tensWords[n/10]
		if n%10 > 0 {
			word += " " + onesWords[n%10]
		}
		parts = append(parts, word)
	case n > 0:
		parts = append(parts, onesWords[n])
	}

	return strings.Join(parts, " ")
}

// RupeesInWords spells a monetary amount for the invoice footer:
// the integer part of its absolute value followed by "Rupees Only".
// Fractional paise are not spelled out; the sign is conveyed by the
// formatted figure next to it.
func RupeesInWords(m types.Money) string {
	whole := m.Abs().Truncate(0).IntPart()
	return AmountInWords(whole) + " Rupees Only"
}
