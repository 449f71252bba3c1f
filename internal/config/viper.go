// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/parsererror"
	"fjacquet/stmt-ledger/internal/validation"
)

// EnvPrefix prefixes every environment override, e.g. LEDGER_CSV_DELIMITER.
const EnvPrefix = "LEDGER"

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls CSV output.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	QuoteAll  bool   `mapstructure:"quote_all" yaml:"quote_all"`
}

// ConversionConfig controls the conversion core.
type ConversionConfig struct {
	DefaultMode string `mapstructure:"default_mode" yaml:"default_mode"`
	RulesFile   string `mapstructure:"rules_file" yaml:"rules_file"`
}

// BatchConfig controls directory conversion.
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// ServerConfig controls the upload server.
type ServerConfig struct {
	Address     string `mapstructure:"address" yaml:"address"`
	BodyLimitMB int    `mapstructure:"body_limit_mb" yaml:"body_limit_mb"`
}

// OutputConfig controls where converted files are written.
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
	Conversion ConversionConfig `mapstructure:"conversion" yaml:"conversion"`
	Batch      BatchConfig      `mapstructure:"batch" yaml:"batch"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
}

// InitializeConfig loads defaults, then the optional config.yaml, then
// LEDGER_* environment variables, and validates the result.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFrom("")
}

// InitializeConfigFrom is InitializeConfig with an explicit config file. An
// empty path searches $HOME/.stmt-ledger, .stmt-ledger and the working
// directory for config.yaml.
func InitializeConfigFrom(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.stmt-ledger")
		v.AddConfigPath(".stmt-ledger")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration with every default applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.quote_all", true)

	v.SetDefault("conversion.default_mode", validation.ModeAuto)
	v.SetDefault("conversion.rules_file", "")

	v.SetDefault("batch.workers", 4)

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.body_limit_mb", 32)

	v.SetDefault("output.directory", "results")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return &parsererror.ValidationError{Reason: fmt.Sprintf("invalid log level: %s", config.Log.Level)}
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return &parsererror.ValidationError{
			Reason: fmt.Sprintf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format),
		}
	}

	if err := validation.ValidateDelimiter(config.CSV.Delimiter); err != nil {
		return err
	}

	if err := validation.ValidateMode(config.Conversion.DefaultMode); err != nil {
		return err
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 64 {
		return &parsererror.ValidationError{
			Reason: fmt.Sprintf("batch.workers must be between 1 and 64, got: %d", config.Batch.Workers),
		}
	}

	if config.Server.BodyLimitMB < 1 || config.Server.BodyLimitMB > 512 {
		return &parsererror.ValidationError{
			Reason: fmt.Sprintf("server.body_limit_mb must be between 1 and 512, got: %d", config.Server.BodyLimitMB),
		}
	}

	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return ','
}

// NewLogger builds the application logger from the log settings.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
