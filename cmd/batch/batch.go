// Package batch handles batch processing of files
package batch

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/stmt-ledger/cmd/root"
	"fjacquet/stmt-ledger/internal/batch"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/report"
)

var reportFile string

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process files from a directory",
	Long: `Batch process files from an input directory and output them to another directory.

Every .pdf and .txt statement in the input directory is converted independently
and in parallel (see batch.workers). A failing file is reported and does not
stop the others; the command exits non-zero if any file failed.

With --report a JSON (or YAML, by extension) summary of every file is written.

Example:
  stmt-ledger batch -i statements/ -o results/ --report results/report.json`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&reportFile, "report", "", "Write a batch report (.json, .yaml or .yml)")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := appContainer.GetLogger()
	cfg := appContainer.GetConfig()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}
	if inputDir == "" {
		return fmt.Errorf("an input directory must be specified with -i")
	}

	runner := batch.NewRunner(appContainer, logger, cfg.Batch.Workers)
	results, err := runner.Run(cmd.Context(), inputDir, outputDir)
	for _, res := range results {
		if res.Failed() {
			cmd.PrintErrf("%s: %v\n", res.Input, res.Err)
			continue
		}
		cmd.Printf("%s -> %s (%d records, %d unreconciled)\n",
			res.Input, res.Output, res.Summary.Records, res.Summary.Unreconciled)
	}

	if reportFile != "" && results != nil {
		if werr := WriteReport(results, reportFile, logger); werr != nil {
			return werr
		}
	}
	return err
}

// WriteReport renders results to path in the format its extension selects.
func WriteReport(results []batch.Result, path string, logger logging.Logger) error {
	out, err := report.NewReportGenerator(logger).
		GenerateReport(report.NewBatchReport(results, time.Now()), report.FormatForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("Wrote batch report", logging.F(logging.FieldOutputFile, path))
	return nil
}
