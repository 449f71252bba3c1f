package pdfparser

import (
	"fmt"
	"os/exec"
)

// extractWithPdftotext shells out to poppler's pdftotext. -layout keeps the
// columns of a statement row on one line.
func extractWithPdftotext(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	out, err := exec.Command("pdftotext", "-layout", path, "-").Output() // #nosec G204 -- fixed binary, path is a temp file
	if err != nil {
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}
	return string(out), nil
}
