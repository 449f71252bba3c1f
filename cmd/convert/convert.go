// Package convert handles single statement conversion
package convert

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/stmt-ledger/cmd/common"
	"fjacquet/stmt-ledger/cmd/root"
	"fjacquet/stmt-ledger/internal/logging"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:     "convert",
	Aliases: []string{"pdf"},
	Short:   "Convert a statement to a ledger CSV",
	Long: `Convert one statement (PDF, or text already extracted from one) into a
reconciled ledger CSV.

When -o is omitted the CSV is written to the configured output directory,
named after the input file and the current time.

Example:
  stmt-ledger convert -i statement.pdf -o ledger.csv --mode bank`,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := appContainer.GetLogger()
	cfg := appContainer.GetConfig()

	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("an input file must be specified with -i")
	}

	mode := root.SharedFlags.Mode
	if mode == "" {
		mode = cfg.Conversion.DefaultMode
	}

	p, err := appContainer.ParserForFile(input)
	if err != nil {
		return err
	}

	output := common.ResolveOutputPath(input, root.SharedFlags.Output, cfg.Output.Directory, time.Now())
	logger.Debug("Convert command called", logging.F(logging.FieldMode, mode))

	_, err = common.ProcessFile(p, input, output, mode, logger)
	return err
}
