// Package pdfparser reads PDF statements into text lines for the ledger
// conversion.
package pdfparser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/stmt-ledger/internal/common"
	"fjacquet/stmt-ledger/internal/ledger"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/parser"
	"fjacquet/stmt-ledger/internal/parsererror"
)

var pdfMagic = []byte("%PDF-")

// Adapter implements parser.FullParser for PDF statements.
type Adapter struct {
	parser.BaseParser
	extractor PDFExtractor
}

// NewAdapter creates a PDF adapter. A nil extractor selects RealPDFExtractor.
func NewAdapter(logger logging.Logger, converter *ledger.Converter, csv common.CSVOptions, extractor PDFExtractor) *Adapter {
	if extractor == nil {
		extractor = NewRealPDFExtractor()
	}
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger, converter, csv),
		extractor:  extractor,
	}
}

// Parse reads a PDF from r and converts it.
func (a *Adapter) Parse(r io.Reader) (models.Ledger, error) {
	return a.ParseWith(a, r)
}

// ExtractLines spools r to a temporary file, since the extractors work on
// paths, and returns the text split into lines. The temporary file is
// removed before returning.
func (a *Adapter) ExtractLines(r io.Reader) ([]string, error) {
	logger := a.GetLogger()

	tempFile, err := os.CreateTemp("", "stmt-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.WithError(err).Warn("Failed to remove temporary file",
				logging.F(logging.FieldFile, tempFile.Name()))
		}
	}()

	header := make([]byte, len(pdfMagic))
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to read PDF input: %w", err)
	}
	if n < len(pdfMagic) || string(header) != string(pdfMagic) {
		_ = tempFile.Close()
		return nil, &parsererror.InvalidFormatError{
			FilePath:             "upload",
			ExpectedFormat:       "PDF",
			ActualContentSnippet: strings.ToValidUTF8(string(header[:n]), "?"),
			Msg:                  "file is not a valid PDF",
		}
	}

	if _, err = tempFile.Write(header); err == nil {
		_, err = io.Copy(tempFile, r)
	}
	if err != nil {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to write to temporary PDF file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	logger.Debug("Extracting PDF text", logging.F(logging.FieldFile, tempFile.Name()))

	text, err := a.extractor.ExtractText(tempFile.Name())
	if err != nil {
		return nil, &parsererror.DataExtractionError{
			FilePath:  tempFile.Name(),
			FieldName: "text",
			Reason:    "could not extract text from PDF",
			Err:       err,
		}
	}

	lines := SplitLines(text)
	if len(lines) == 0 {
		return nil, &parsererror.DataExtractionError{
			FilePath:  tempFile.Name(),
			FieldName: "text",
			Reason:    "PDF contains no text",
			Err:       ErrNoText,
		}
	}

	logger.Debug("Extracted PDF text", logging.F(logging.FieldCount, len(lines)))
	return lines, nil
}

// ConvertToCSV converts a PDF file to a CSV file.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) (models.Ledger, error) {
	return a.ConvertFileWith(a, inputFile, outputFile)
}

// SplitLines splits extracted text into trimmed, non-empty lines. Form feeds
// between pages count as line breaks.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
