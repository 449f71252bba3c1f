// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"fjacquet/stmt-ledger/internal/config"
	"fjacquet/stmt-ledger/internal/container"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/validation"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input        string
	Output       string
	Mode         string
	ConfigFile   string
	LogLevel     string
	LogFormat    string
	CSVDelimiter string
	RulesFile    string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "stmt-ledger",
		Short: "Reconcile bank statement PDFs into a transaction ledger CSV.",
		Long: `stmt-ledger reads bank statements (PDF or extracted text), rebuilds every
transaction with its direction, parties and running balance, and writes a CSV
ledger that flags where the calculated balance differs from the statement.`,
		SilenceUsage:      true,
		PersistentPreRunE: bootstrap,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				_ = appContainer.Close()
			}
		},
	}

	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	appContainer *container.Container
	appConfig    *config.Config
	initOnce     sync.Once
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		f := Cmd.PersistentFlags()
		f.StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
		f.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
		f.StringVar(&SharedFlags.Mode, "mode", "", "Conversion mode hint: auto, bank or pos")
		f.StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches config.yaml)")
		f.StringVar(&SharedFlags.LogLevel, "log-level", config.GetEnv("LOG_LEVEL", ""), "Log level: trace, debug, info, warn, error")
		f.StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format: text or json")
		f.StringVar(&SharedFlags.CSVDelimiter, "csv-delimiter", "", "CSV field delimiter")
		f.StringVar(&SharedFlags.RulesFile, "rules", "", "YAML file with extra party extraction rules")
	})
}

// bootstrap loads configuration, applies flag overrides and builds the
// container shared by the subcommands.
func bootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfigFrom(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if err := ApplyFlags(cfg, SharedFlags); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	appConfig = cfg
	appContainer = c
	return nil
}

// ApplyFlags overlays non-empty flag values on cfg and validates the result.
func ApplyFlags(cfg *config.Config, flags CommonFlags) error {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.CSVDelimiter != "" {
		if err := validation.ValidateDelimiter(flags.CSVDelimiter); err != nil {
			return err
		}
		cfg.CSV.Delimiter = flags.CSVDelimiter
	}
	if flags.RulesFile != "" {
		cfg.Conversion.RulesFile = flags.RulesFile
	}
	if flags.Mode != "" {
		if err := validation.ValidateMode(flags.Mode); err != nil {
			return err
		}
		cfg.Conversion.DefaultMode = validation.NormalizeMode(flags.Mode)
	}
	return nil
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return appContainer
}

// GetConfig returns the configuration of the running command.
func GetConfig() *config.Config {
	return appConfig
}

// GetLogger returns the configured logger, or a default one before
// bootstrap has run.
func GetLogger() logging.Logger {
	if appContainer != nil {
		return appContainer.GetLogger()
	}
	return logging.NewLogrusAdapter("info", "text")
}
