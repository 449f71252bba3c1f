package textutils

import (
	"regexp"
	"strings"

	"fjacquet/stmt-ledger/internal/models"
)

var (
	periodPattern = regexp.MustCompile(`^FROM(?:\s*\(NGA DATA\))?\s*:\s*(\S*\d\S*)(?:.*?\bTO(?:\s*\(NE DATEN\))?\s*:\s*(\S*\d\S*))?`)
	namePattern   = regexp.MustCompile(`\bPF\b`)
)

// ExtractHeader scans the document for labelled statement header fields.
// The first value found for each field wins. The period is only read from an
// upper-case FROM label that starts the line and carries a date.
func ExtractHeader(lines []string) models.StatementHeader {
	var h models.StatementHeader

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "IBAN:"):
			setOnce(&h.IBAN, strings.TrimPrefix(line, "IBAN:"))
		case strings.Contains(line, "BIC/Swift code:"):
			_, after, _ := strings.Cut(line, "BIC/Swift code:")
			setOnce(&h.BIC, after)
		case strings.Contains(line, "DATE OF STATEMENT"):
			_, after, _ := strings.Cut(line, "DATE OF STATEMENT")
			setOnce(&h.StatementDate, strings.TrimLeft(strings.TrimSpace(after), ":"))
		case periodPattern.MatchString(line):
			m := periodPattern.FindStringSubmatch(line)
			setOnce(&h.FromDate, m[1])
			setOnce(&h.ToDate, m[2])
		case namePattern.MatchString(line):
			setOnce(&h.Name, line)
		}
	}

	return h
}

func setOnce(dst *string, v string) {
	if *dst != "" {
		return
	}
	*dst = strings.TrimSpace(v)
}
