// Package textparser reads statements that were already extracted to plain
// text, one document line per input line.
package textparser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fjacquet/stmt-ledger/internal/common"
	"fjacquet/stmt-ledger/internal/ledger"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/parser"
	"fjacquet/stmt-ledger/internal/parsererror"
)

const maxLineBytes = 1024 * 1024

// Adapter implements parser.FullParser for text files.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a text adapter.
func NewAdapter(logger logging.Logger, converter *ledger.Converter, csv common.CSVOptions) *Adapter {
	return &Adapter{BaseParser: parser.NewBaseParser(logger, converter, csv)}
}

// Parse reads lines from r and converts them.
func (a *Adapter) Parse(r io.Reader) (models.Ledger, error) {
	return a.ParseWith(a, r)
}

// ExtractLines returns the trimmed, non-empty lines of r. A UTF-8 byte
// order mark on the first line is dropped.
func (a *Adapter) ExtractLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &parsererror.ParseError{
			Parser: "text",
			Field:  "line",
			Value:  fmt.Sprintf("after %d lines", len(lines)),
			Err:    err,
		}
	}

	a.GetLogger().Debug("Read text lines", logging.F(logging.FieldCount, len(lines)))
	return lines, nil
}

// ConvertToCSV converts a text file to a CSV file.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) (models.Ledger, error) {
	return a.ConvertFileWith(a, inputFile, outputFile)
}
