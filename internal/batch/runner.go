// Package batch converts every statement in a directory concurrently.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fjacquet/stmt-ledger/internal/fileutils"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/parser"
	"fjacquet/stmt-ledger/internal/validation"
)

// ParserResolver picks the parser for an input file.
type ParserResolver interface {
	ParserForFile(path string) (parser.FullParser, error)
}

// Result is the outcome of converting one file.
type Result struct {
	ConversionID string
	Input        string
	Output       string
	Summary      models.Summary
	Duration     time.Duration
	Err          error
}

// Failed reports whether the conversion failed.
func (r Result) Failed() bool { return r.Err != nil }

// Runner converts the statements of a directory with bounded parallelism.
// Every file gets its own ledger state, so one file never affects another.
type Runner struct {
	resolver ParserResolver
	logger   logging.Logger
	workers  int
	clock    fileutils.Clock
}

// NewRunner creates a runner. workers below 1 means 1.
func NewRunner(resolver ParserResolver, logger logging.Logger, workers int) *Runner {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{resolver: resolver, logger: logger, workers: workers, clock: time.Now}
}

// SetClock replaces the clock used for output file names.
func (r *Runner) SetClock(clock fileutils.Clock) {
	r.clock = clock
}

// Run converts every .pdf and .txt file in inputDir into outputDir. Results
// follow the sorted input order. A failing file does not stop the others;
// the returned error is non-nil when any file failed or ctx was cancelled.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) ([]Result, error) {
	files, err := fileutils.ListFilesWithExtensions(inputDir, validation.ExtPDF, validation.ExtText)
	if err != nil {
		return nil, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, err
	}

	r.logger.Info("Starting batch conversion",
		logging.F(logging.FieldInputFile, inputDir),
		logging.F(logging.FieldOutputFile, outputDir),
		logging.F(logging.FieldCount, len(files)))

	outputs := outputNames(files, outputDir, r.clock())
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Input: file, Err: err}
				return nil
			}
			results[i] = r.convert(file, outputs[i])
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}

	r.logger.Info("Batch conversion finished",
		logging.F(logging.FieldCount, len(files)),
		logging.F("failed", failed))

	if err := ctx.Err(); err != nil {
		return results, err
	}
	if failed > 0 {
		return results, fmt.Errorf("%d of %d files failed to convert", failed, len(files))
	}
	return results, nil
}

func (r *Runner) convert(input, output string) Result {
	res := Result{ConversionID: uuid.NewString(), Input: input, Output: output}
	logger := r.logger.WithFields(
		logging.F(logging.FieldConversionID, res.ConversionID),
		logging.F(logging.FieldInputFile, input))

	start := time.Now()

	p, err := r.resolver.ParserForFile(input)
	if err != nil {
		res.Err = err
		logger.WithError(err).Error("No parser for file")
		return res
	}

	l, err := p.ConvertToCSV(input, output)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		logger.WithError(err).Error("Failed to convert file")
		return res
	}

	res.Summary = l.Summarize()
	logger.Info("Converted file",
		logging.F(logging.FieldOutputFile, output),
		logging.F(logging.FieldCount, res.Summary.Records),
		logging.F(logging.FieldUnreconciled, res.Summary.Unreconciled),
		logging.F(logging.FieldDuration, res.Duration.Milliseconds()))
	return res
}

// outputNames assigns one CSV path per input, numbering names that would
// otherwise collide (statement.pdf and statement.txt).
func outputNames(files []string, outputDir string, now time.Time) []string {
	seen := make(map[string]int, len(files))
	names := make([]string, len(files))
	for i, file := range files {
		name := fileutils.OutputFileName(file, models.StatementHeader{}, now)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d.csv", strings.TrimSuffix(name, ".csv"), n)
		}
		names[i] = filepath.Join(outputDir, name)
	}
	return names
}
