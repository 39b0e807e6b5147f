package utils

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// amountPrecision is the number of decimals totals are rounded to.
const amountPrecision = 2

// ParseAmount reads a free-text currency amount such as "$1,250.50" or "MXN 300".
// Currency symbols, letters and spaces are dropped; commas are treated as
// thousands separators. The stored text is never rewritten with the result.
func ParseAmount(text string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(text) {
		switch {
		case unicode.IsDigit(r), r == '.', r == '-':
			b.WriteRune(r)
		case r == ',', r == '$', unicode.IsSpace(r), unicode.IsLetter(r):
			// separators and currency markers
		default:
			return decimal.Zero, false
		}
	}
	if b.Len() == 0 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

// SumAmounts totals the parseable amounts and counts the non-empty ones that
// could not be parsed.
func SumAmounts(texts []string) (total string, unparsed int) {
	sum := decimal.Zero
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		d, ok := ParseAmount(t)
		if !ok {
			unparsed++
			continue
		}
		sum = sum.Add(d)
	}
	return FormatWithPrecision(sum, amountPrecision), unparsed
}
