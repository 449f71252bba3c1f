// Package report renders batch conversion results for humans and tools.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"fjacquet/stmt-ledger/internal/batch"
	"fjacquet/stmt-ledger/internal/logging"
)

// Status values of a FileReport.
const (
	StatusConverted = "converted"
	StatusFailed    = "failed"
)

// FileReport is the outcome of one converted file.
type FileReport struct {
	ConversionID string `json:"conversion_id" yaml:"conversion_id"`
	Input        string `json:"input" yaml:"input"`
	Output       string `json:"output,omitempty" yaml:"output,omitempty"`
	Status       string `json:"status" yaml:"status"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
	Records      int    `json:"records" yaml:"records"`
	Unreconciled int    `json:"unreconciled" yaml:"unreconciled"`
	Differences  int    `json:"differences" yaml:"differences"`
	TotalDebit   string `json:"total_debit,omitempty" yaml:"total_debit,omitempty"`
	TotalCredit  string `json:"total_credit,omitempty" yaml:"total_credit,omitempty"`
	DurationMS   int64  `json:"duration_ms" yaml:"duration_ms"`
}

// BatchReport summarises a batch run.
type BatchReport struct {
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Converted   int          `json:"converted" yaml:"converted"`
	Failed      int          `json:"failed" yaml:"failed"`
	Files       []FileReport `json:"files" yaml:"files"`
}

// NewBatchReport builds a report from runner results.
func NewBatchReport(results []batch.Result, generatedAt time.Time) *BatchReport {
	r := &BatchReport{GeneratedAt: generatedAt, Files: make([]FileReport, 0, len(results))}
	for _, res := range results {
		f := FileReport{
			ConversionID: res.ConversionID,
			Input:        res.Input,
			DurationMS:   res.Duration.Milliseconds(),
		}
		if res.Failed() {
			f.Status = StatusFailed
			f.Error = res.Err.Error()
			r.Failed++
		} else {
			f.Status = StatusConverted
			f.Output = res.Output
			f.Records = res.Summary.Records
			f.Unreconciled = res.Summary.Unreconciled
			f.Differences = res.Summary.Differences
			f.TotalDebit = res.Summary.TotalDebit
			f.TotalCredit = res.Summary.TotalCredit
			r.Converted++
		}
		r.Files = append(r.Files, f)
	}
	return r
}

// ReportGenerator renders reports in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &ReportGenerator{logger: logger}
}

// FormatForPath picks the report format from a file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// GenerateReport renders report as "json" or "yaml".
func (g *ReportGenerator) GenerateReport(report *BatchReport, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSONReport(report)
	case "yaml":
		return g.generateYAMLReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(report *BatchReport) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateYAMLReport(report *BatchReport) ([]byte, error) {
	out, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
