// Package converter is the public entry point for embedding statement
// conversion in other programs.
package converter

import (
	"context"
	"fmt"
	"os"

	"fjacquet/stmt-ledger/internal/batch"
	"fjacquet/stmt-ledger/internal/config"
	"fjacquet/stmt-ledger/internal/container"
	"fjacquet/stmt-ledger/internal/ledger"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/pdfparser"
	"fjacquet/stmt-ledger/internal/validation"
)

// Row is one formatted ledger line, opening balance first.
type Row = models.LedgerRow

// Summary totals a converted statement.
type Summary = models.Summary

// ConvertText converts already extracted statement text with the built-in
// rules.
func ConvertText(text string) ([]Row, Summary) {
	l := ledger.Convert(pdfparser.SplitLines(text))
	return l.Rows(), l.Summarize()
}

// ConvertToCSV converts inputFile (.pdf or .txt) to csvFile using the
// default configuration.
func ConvertToCSV(inputFile, csvFile string) error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	p, err := c.ParserForFile(inputFile)
	if err != nil {
		return err
	}
	_, err = p.ConvertToCSV(inputFile, csvFile)
	return err
}

// BatchConvert converts every statement in inputDir and returns how many
// files succeeded.
func BatchConvert(inputDir, outputDir string) (int, error) {
	c, err := newContainer()
	if err != nil {
		return 0, err
	}
	results, err := batch.NewRunner(c, c.GetLogger(), c.GetConfig().Batch.Workers).
		Run(context.Background(), inputDir, outputDir)

	count := 0
	for _, r := range results {
		if !r.Failed() {
			count++
		}
	}
	return count, err
}

// ValidateStatement reports whether path is a readable statement with at
// least one dated transaction line.
func ValidateStatement(path string) (bool, error) {
	if err := validation.ValidateInputFile(path); err != nil {
		return false, err
	}
	c, err := newContainer()
	if err != nil {
		return false, err
	}
	p, err := c.ParserForFile(path)
	if err != nil {
		return false, err
	}

	f, err := os.Open(path) // #nosec G304 -- caller supplied path
	if err != nil {
		return false, fmt.Errorf("error opening statement: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := p.ExtractLines(f)
	if err != nil {
		return false, nil
	}
	for _, line := range lines {
		if ledger.IsAnchor(line) {
			return true, nil
		}
	}
	return false, nil
}

func newContainer() (*container.Container, error) {
	return container.NewContainer(config.Default(), container.WithLogger(logging.NewDiscardLogger()))
}
