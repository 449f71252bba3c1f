package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFindAmounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"grouped", "SETTLEMENT 200.00 14,700.00", []string{"200.00", "14,700.00"}},
		{"negative", "Transfer -50.00 950.00", []string{"-50.00", "950.00"}},
		{"ungrouped large", "1234567.89", []string{"1234567.89"}},
		{"needs two decimals", "Ref 12345 and 7.5", nil},
		{"none", "no numbers here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindAmounts(tt.text))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"1,234.56", "1234.56"},
		{"-50.00", "-50"},
		{" 14,700.00 ", "14700"},
		{"", "0"},
		{"abc", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(ParseAmount(tt.token)),
				"ParseAmount(%q) = %s", tt.token, ParseAmount(tt.token))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999.999", "1,000.00"},
		{"1234.5", "1,234.50"},
		{"-1234567.8", "-1,234,567.80"},
		{"100000", "100,000.00"},
		{"-0.001", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatNullAmount(t *testing.T) {
	assert.Equal(t, "", FormatNullAmount(decimal.NullDecimal{}))
	assert.Equal(t, "12.00", FormatNullAmount(Some(decimal.NewFromInt(12))))
}
