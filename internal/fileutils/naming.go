package fileutils

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"fjacquet/stmt-ledger/internal/models"
)

// TimestampLayout is the suffix format of generated file names.
const TimestampLayout = "20060102_150405"

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

var (
	nonASCII    = regexp.MustCompile(`[^\x00-\x7F]+`)
	nonAlnum    = regexp.MustCompile(`[^A-Za-z0-9]+`)
	underscores = regexp.MustCompile(`_+`)
)

// CleanFilenameValue reduces s to ASCII letters, digits and single
// underscores.
func CleanFilenameValue(s string) string {
	s = nonASCII.ReplaceAllString(s, "")
	s = nonAlnum.ReplaceAllString(s, "_")
	s = underscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// OutputFileName names the CSV produced for a statement. With a source file
// name the result is <clean base>_<timestamp>.csv; otherwise the header's
// name, IBAN and period are used, falling back to statement_<timestamp>.csv.
func OutputFileName(source string, header models.StatementHeader, now time.Time) string {
	stamp := now.Format(TimestampLayout)

	if source != "" {
		base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		if clean := CleanFilenameValue(base); clean != "" {
			return clean + "_" + stamp + ".csv"
		}
	}

	var parts []string
	for _, v := range []string{header.Name, header.IBAN, header.FromDate, header.ToDate} {
		if clean := CleanFilenameValue(v); clean != "" {
			parts = append(parts, clean)
		}
	}
	if len(parts) == 0 {
		parts = []string{"statement"}
	}
	return strings.Join(append(parts, stamp), "_") + ".csv"
}
