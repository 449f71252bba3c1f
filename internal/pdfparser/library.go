package pdfparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractWithLibrary reads every page row by row. The reader panics on some
// malformed files, so panics are turned into errors.
func extractWithLibrary(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF reader crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			parts := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}

	if b.Len() > 0 {
		return b.String(), nil
	}

	// Some encoders only survive the whole-document plain text path.
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
