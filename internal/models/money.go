package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPattern matches a monetary literal: optional leading minus, digits
// optionally grouped by commas in threes, and exactly two fraction digits.
// The grouped alternative is tried first so "14,700.00" is one token.
var AmountPattern = regexp.MustCompile(`-?\d{1,3}(?:,\d{3})*\.\d{2}|-?\d+\.\d{2}`)

// FindAmounts returns every monetary token in text, left to right.
func FindAmounts(text string) []string {
	return AmountPattern.FindAllString(text, -1)
}

// ParseAmount normalizes a monetary token ("1,234.56", "-50.00") into an exact
// decimal. Empty or unparsable input yields zero so one bad token only degrades
// its own field.
func ParseAmount(token string) decimal.Decimal {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return decimal.Zero
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// RoundMoney rounds to cents, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatAmount renders d with two decimals and comma thousands separators,
// e.g. -1234567.8 -> "-1,234,567.80".
func FormatAmount(d decimal.Decimal) string {
	fixed := RoundMoney(d).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.Grow(len(fixed) + len(intPart)/3 + 1)
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatNullAmount formats an optional amount; unset values become "".
func FormatNullAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return FormatAmount(d.Decimal)
}

// Some wraps d as a set optional amount.
func Some(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
