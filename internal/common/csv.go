// Package common holds the CSV serialization shared by the commands and the
// upload server.
package common

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"fjacquet/stmt-ledger/internal/fileutils"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
)

// CSVOptions controls ledger output.
type CSVOptions struct {
	Delimiter rune
	QuoteAll  bool
}

// DefaultCSVOptions writes comma separated, fully quoted output.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Delimiter: ',', QuoteAll: true}
}

// quoteAllWriter satisfies gocsv.CSVWriter and quotes every field, including
// empty ones, the way spreadsheet exports with QUOTE_ALL do.
type quoteAllWriter struct {
	w         *bufio.Writer
	delimiter rune
	err       error
}

func newQuoteAllWriter(w io.Writer, delimiter rune) *quoteAllWriter {
	return &quoteAllWriter{w: bufio.NewWriter(w), delimiter: delimiter}
}

func (q *quoteAllWriter) Write(row []string) error {
	if q.err != nil {
		return q.err
	}
	for i, field := range row {
		if i > 0 {
			if _, q.err = q.w.WriteRune(q.delimiter); q.err != nil {
				return q.err
			}
		}
		if _, q.err = q.w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); q.err != nil {
			return q.err
		}
	}
	q.err = q.w.WriteByte('\n')
	return q.err
}

func (q *quoteAllWriter) Flush() {
	if err := q.w.Flush(); err != nil && q.err == nil {
		q.err = err
	}
}

func (q *quoteAllWriter) Error() error {
	return q.err
}

func newCSVWriter(w io.Writer, opts CSVOptions) gocsv.CSVWriter {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.QuoteAll {
		return newQuoteAllWriter(w, opts.Delimiter)
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = opts.Delimiter
	return gocsv.NewSafeCSVWriter(csvWriter)
}

// WriteLedger writes the ledger as CSV, header row first and the opening
// record before the transactions.
func WriteLedger(w io.Writer, ledger models.Ledger, opts CSVOptions) error {
	rows := ledger.Rows()
	if err := gocsv.MarshalCSV(&rows, newCSVWriter(w, opts)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// LedgerCSV renders the ledger to memory.
func LedgerCSV(ledger models.Ledger, opts CSVOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLedger(&buf, ledger, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLedgerToCSV writes the ledger to csvFile, creating parent directories.
func WriteLedgerToCSV(ledger models.Ledger, csvFile string, opts CSVOptions, logger logging.Logger) (err error) {
	logger.Info("Writing ledger to CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(ledger.Records)),
		logging.F(logging.FieldDelimiter, string(opts.Delimiter)))

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file", logging.F(logging.FieldFile, csvFile))
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing CSV file: %w", cerr)
		}
	}()

	if err := WriteLedger(file, ledger, opts); err != nil {
		logger.WithError(err).Error("Failed to marshal ledger to CSV")
		return err
	}

	logger.Info("Successfully wrote ledger to CSV file", logging.F(logging.FieldFile, csvFile))
	return nil
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	logger.Debug("Reading CSV file", logging.F(logging.FieldFile, filePath))

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	return rows, nil
}
