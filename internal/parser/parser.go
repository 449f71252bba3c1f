package parser

import (
	"io"

	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
)

// Parser reads one statement and returns its reconciled ledger.
type Parser interface {
	// Parse reads the document from r, recovers its text lines and runs the
	// ledger conversion over them. Implementations return typed errors from
	// the parsererror package for unreadable input; a readable document
	// always yields a ledger, possibly with no records.
	Parse(r io.Reader) (models.Ledger, error)
}

// LineExtractor recovers the ordered text lines of one document.
type LineExtractor interface {
	ExtractLines(r io.Reader) ([]string, error)
}

// CSVConverter converts a file on disk into a CSV file.
type CSVConverter interface {
	ConvertToCSV(inputFile, outputFile string) (models.Ledger, error)
}

// LoggerConfigurable is implemented by parsers whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is what the commands and the upload server work with.
type FullParser interface {
	Parser
	LineExtractor
	CSVConverter
	LoggerConfigurable
}
