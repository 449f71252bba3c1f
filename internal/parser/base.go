// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fmt"
	"io"
	"os"

	"fjacquet/stmt-ledger/internal/common"
	"fjacquet/stmt-ledger/internal/ledger"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
)

// BaseParser carries what every input adapter shares: the logger, the ledger
// converter and the CSV options. Adapters embed it and supply ExtractLines.
//
//	type MyParser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger    logging.Logger
	converter *ledger.Converter
	csv       common.CSVOptions
}

// NewBaseParser creates a BaseParser. A nil logger falls back to an info
// level logrus logger and a nil converter uses the built-in rules.
func NewBaseParser(logger logging.Logger, converter *ledger.Converter, csv common.CSVOptions) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if converter == nil {
		converter = ledger.NewConverter(logger, nil)
	}
	return BaseParser{
		logger:    logger,
		converter: converter,
		csv:       csv,
	}
}

// SetLogger implements the LoggerConfigurable interface.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// CSVOptions returns the output options.
func (b *BaseParser) CSVOptions() common.CSVOptions {
	return b.csv
}

// ConvertLines runs the ledger conversion over extracted lines.
func (b *BaseParser) ConvertLines(lines []string) models.Ledger {
	b.logger.Debug("Converting extracted lines", logging.F(logging.FieldCount, len(lines)))
	return b.converter.Convert(lines)
}

// WriteToCSV writes a ledger with the parser's CSV options.
func (b *BaseParser) WriteToCSV(l models.Ledger, csvFile string) error {
	return common.WriteLedgerToCSV(l, csvFile, b.csv, b.logger)
}

// ParseWith extracts lines with ex and converts them.
func (b *BaseParser) ParseWith(ex LineExtractor, r io.Reader) (models.Ledger, error) {
	lines, err := ex.ExtractLines(r)
	if err != nil {
		return models.Ledger{}, err
	}
	return b.ConvertLines(lines), nil
}

// ConvertFileWith opens inputFile, parses it with p and writes the ledger
// to outputFile.
func (b *BaseParser) ConvertFileWith(p Parser, inputFile, outputFile string) (models.Ledger, error) {
	file, err := os.Open(inputFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return models.Ledger{}, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			b.logger.WithError(err).Warn("Failed to close input file",
				logging.F(logging.FieldFile, inputFile))
		}
	}()

	l, err := p.Parse(file)
	if err != nil {
		return models.Ledger{}, err
	}

	if err := b.WriteToCSV(l, outputFile); err != nil {
		return l, err
	}
	return l, nil
}
