// Package textutils extracts labelled values from noisy statement text.
package textutils

import (
	"fmt"
	"regexp"
	"strings"
)

// PartyRule is one entry of an ordered extraction cascade. Pattern must have
// one capture group holding the value. When Unless is non-empty the rule is
// skipped for lines containing it (case-insensitive).
type PartyRule struct {
	Name     string
	Priority int
	Pattern  *regexp.Regexp
	Unless   string
}

// NewPartyRule compiles a rule. Patterns are made case-insensitive.
func NewPartyRule(name string, priority int, pattern, unless string) (PartyRule, error) {
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return PartyRule{}, fmt.Errorf("rule %q: %w", name, err)
	}
	if re.NumSubexp() < 1 {
		return PartyRule{}, fmt.Errorf("rule %q: pattern needs a capture group", name)
	}
	return PartyRule{
		Name:     name,
		Priority: priority,
		Pattern:  re,
		Unless:   strings.ToLower(unless),
	}, nil
}

func mustRule(name string, priority int, pattern, unless string) PartyRule {
	r, err := NewPartyRule(name, priority, pattern, unless)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultOrderedByRules is the built-in remitter cascade.
func DefaultOrderedByRules() []PartyRule {
	return []PartyRule{
		mustRule("transfer by order of", 1, `ft\s*-\s*by\s+order\s+of\s*[:-]?\s*(.+)`, ""),
		mustRule("by order of", 2, `by\s+order\s+of\s*[:-]?\s*(.+)`, ""),
		mustRule("order of", 3, `order\s+of\s*[:-]?\s*(.+)`, "by order of"),
	}
}

// DefaultBeneficiaryRules is the built-in beneficiary cascade.
func DefaultBeneficiaryRules() []PartyRule {
	return []PartyRule{
		mustRule("transfer ben dash", 1, `ft\s*-\s*ben\s*-\s*(.+)`, ""),
		mustRule("transfer ben", 2, `ft\s*-\s*ben\s+[:-]?\s*(.+)`, ""),
		mustRule("beneficiary", 3, `beneficiary\s*[:-]?\s*(.+)`, ""),
		mustRule("ben dash", 4, `\bben\s*-\s*(.+)`, "beneficiary"),
		mustRule("ben", 5, `\bben\b\s*[:-]?\s*(.+)`, "beneficiary"),
	}
}

// PartyExtractor holds the remitter and beneficiary cascades. It is
// immutable after construction and safe for concurrent use.
type PartyExtractor struct {
	orderedBy   []PartyRule
	beneficiary []PartyRule
}

// NewPartyExtractor returns an extractor with the built-in rules followed by
// any extra rules, which therefore have lower priority.
func NewPartyExtractor(extraOrderedBy, extraBeneficiary []PartyRule) *PartyExtractor {
	return &PartyExtractor{
		orderedBy:   appendRules(DefaultOrderedByRules(), extraOrderedBy),
		beneficiary: appendRules(DefaultBeneficiaryRules(), extraBeneficiary),
	}
}

func appendRules(base, extra []PartyRule) []PartyRule {
	next := len(base) + 1
	for _, r := range extra {
		r.Priority = next
		next++
		base = append(base, r)
	}
	return base
}

// OrderedByRules returns a copy of the remitter cascade.
func (p *PartyExtractor) OrderedByRules() []PartyRule {
	return append([]PartyRule(nil), p.orderedBy...)
}

// BeneficiaryRules returns a copy of the beneficiary cascade.
func (p *PartyExtractor) BeneficiaryRules() []PartyRule {
	return append([]PartyRule(nil), p.beneficiary...)
}

// ExtractOrderedBy returns the remitter named on line, or "".
func (p *PartyExtractor) ExtractOrderedBy(line string) string {
	return applyRules(p.orderedBy, line)
}

// ExtractBeneficiary returns the beneficiary named on line, or "".
func (p *PartyExtractor) ExtractBeneficiary(line string) string {
	return applyRules(p.beneficiary, line)
}

var defaultParties = NewPartyExtractor(nil, nil)

// DefaultPartyExtractor returns the shared extractor holding only built-in rules.
func DefaultPartyExtractor() *PartyExtractor {
	return defaultParties
}

// ExtractOrderedBy applies the built-in remitter cascade.
func ExtractOrderedBy(line string) string {
	return defaultParties.ExtractOrderedBy(line)
}

// ExtractBeneficiary applies the built-in beneficiary cascade.
func ExtractBeneficiary(line string) string {
	return defaultParties.ExtractBeneficiary(line)
}

func applyRules(rules []PartyRule, line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	lower := strings.ToLower(line)

	for _, rule := range rules {
		if rule.Unless != "" && strings.Contains(lower, rule.Unless) {
			continue
		}
		m := rule.Pattern.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		if v := cleanValue(m[1]); v != "" {
			return v
		}
	}
	return ""
}

func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-:")
	return strings.TrimSpace(s)
}
