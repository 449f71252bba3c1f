package textutils_test

import (
	"testing"

	"fjacquet/stmt-ledger/internal/textutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOrderedBy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"by order of with colon", "By Order Of: JOHN DOE", "JOHN DOE"},
		{"transfer marker", "Ft - By Order Of ACME SHPK", "ACME SHPK"},
		{"compact transfer marker", "ft-by order of -ALBA TRADE", "ALBA TRADE"},
		{"bare order of", "Order of: MARIA KOLA", "MARIA KOLA"},
		{"by order of without value", "By Order Of:", ""},
		{"case preserved", "by order of Jane Smith", "Jane Smith"},
		{"no marker", "Transfer reference 42", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutils.ExtractOrderedBy(tt.input))
		})
	}
}

func TestExtractBeneficiary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"transfer ben dash", "Ft - Ben - MC DONALD S SHPK", "MC DONALD S SHPK"},
		{"transfer ben no space", "Ft - Ben -MC DONALD S SHPK", "MC DONALD S SHPK"},
		{"transfer ben without dash", "Ft - Ben VODAFONE", "VODAFONE"},
		{"beneficiary label", "Beneficiary: ONE TELECOM", "ONE TELECOM"},
		{"short ben label", "Ben: ARTAN HOXHA", "ARTAN HOXHA"},
		{"ben inside word ignored", "Payment to Benjamin", ""},
		{"beneficiary without value", "Beneficiary:", ""},
		{"no marker", "Salary January", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutils.ExtractBeneficiary(tt.input))
		})
	}
}

func TestPartyExtractor_ExtraRulesRunLast(t *testing.T) {
	extra, err := textutils.NewPartyRule("paguar nga", 0, `paguar\s+nga\s*[:-]?\s*(.+)`, "")
	require.NoError(t, err)

	p := textutils.NewPartyExtractor([]textutils.PartyRule{extra}, nil)

	assert.Equal(t, "BLEDI", p.ExtractOrderedBy("Paguar nga: BLEDI"))
	assert.Equal(t, "JOHN paguar nga BLEDI", p.ExtractOrderedBy("By order of JOHN paguar nga BLEDI"))

	rules := p.OrderedByRules()
	require.Len(t, rules, 4)
	assert.Equal(t, "paguar nga", rules[3].Name)
	assert.Equal(t, 4, rules[3].Priority)
}

func TestNewPartyRule_Invalid(t *testing.T) {
	_, err := textutils.NewPartyRule("broken", 1, `(unclosed`, "")
	assert.Error(t, err)

	_, err = textutils.NewPartyRule("no group", 1, `payer`, "")
	assert.Error(t, err)
}
