// Package common contains shared functionality for command handlers
package common

import (
	"path/filepath"
	"time"

	"fjacquet/stmt-ledger/internal/fileutils"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/parser"
	"fjacquet/stmt-ledger/internal/validation"
)

// ResolveOutputPath returns output when set; otherwise a generated file name
// inside outputDir.
func ResolveOutputPath(inputFile, output, outputDir string, now time.Time) string {
	if output != "" {
		return output
	}
	return filepath.Join(outputDir, fileutils.OutputFileName(inputFile, models.StatementHeader{}, now))
}

// ProcessFile converts one statement with p and logs its summary. The mode
// hint is validated and logged only.
func ProcessFile(p parser.FullParser, inputFile, outputFile, mode string, log logging.Logger) (models.Ledger, error) {
	p.SetLogger(log)

	if err := validation.ValidateMode(mode); err != nil {
		return models.Ledger{}, err
	}
	if err := validation.ValidateInputFile(inputFile); err != nil {
		return models.Ledger{}, err
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(outputFile)); err != nil {
		return models.Ledger{}, err
	}

	log.Info("Converting statement",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldMode, validation.NormalizeMode(mode)))

	l, err := p.ConvertToCSV(inputFile, outputFile)
	if err != nil {
		return models.Ledger{}, err
	}

	s := l.Summarize()
	log.Info("Conversion completed successfully!",
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldCount, s.Records),
		logging.F(logging.FieldUnreconciled, s.Unreconciled),
		logging.F(logging.FieldDifferences, s.Differences))
	return l, nil
}
