// Package container wires the application's dependencies from configuration.
package container

import (
	"fmt"

	"fjacquet/stmt-ledger/internal/common"
	"fjacquet/stmt-ledger/internal/config"
	"fjacquet/stmt-ledger/internal/ledger"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/parser"
	"fjacquet/stmt-ledger/internal/pdfparser"
	"fjacquet/stmt-ledger/internal/rules"
	"fjacquet/stmt-ledger/internal/textparser"
	"fjacquet/stmt-ledger/internal/textutils"
)

// Option customises a Container during construction.
type Option func(*options)

type options struct {
	logger    logging.Logger
	extractor pdfparser.PDFExtractor
}

// WithLogger replaces the logger built from cfg.Log.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithPDFExtractor replaces the real PDF text extractor.
func WithPDFExtractor(extractor pdfparser.PDFExtractor) Option {
	return func(o *options) { o.extractor = extractor }
}

// Container holds all application dependencies. It is immutable after
// creation.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	parties   *textutils.PartyExtractor
	converter *ledger.Converter
	csv       common.CSVOptions

	parsers map[parser.ParserType]parser.FullParser
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = cfg.NewLogger()
	}

	parties, err := rules.NewStore(cfg.Conversion.RulesFile, logger).LoadExtractor()
	if err != nil {
		return nil, fmt.Errorf("failed to load party rules: %w", err)
	}

	converter := ledger.NewConverter(logger, parties)
	csvOpts := common.CSVOptions{Delimiter: cfg.Delimiter(), QuoteAll: cfg.CSV.QuoteAll}

	parsers := map[parser.ParserType]parser.FullParser{
		parser.PDF:  pdfparser.NewAdapter(logger, converter, csvOpts, o.extractor),
		parser.Text: textparser.NewAdapter(logger, converter, csvOpts),
	}

	logger.Debug("Container initialized",
		logging.F("parsers_count", len(parsers)),
		logging.F(logging.FieldDelimiter, string(csvOpts.Delimiter)))

	return &Container{
		logger:    logger,
		config:    cfg,
		parties:   parties,
		converter: converter,
		csv:       csvOpts,
		parsers:   parsers,
	}, nil
}

// GetParser returns the parser for the given type.
func (c *Container) GetParser(pt parser.ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// ParserForFile returns the parser matching the file's extension.
func (c *Container) ParserForFile(path string) (parser.FullParser, error) {
	pt, err := parser.TypeForFile(path)
	if err != nil {
		return nil, err
	}
	return c.GetParser(pt)
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[parser.ParserType]parser.FullParser {
	result := make(map[parser.ParserType]parser.FullParser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// GetLogger returns the container's logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetConverter returns the shared ledger converter.
func (c *Container) GetConverter() *ledger.Converter {
	return c.converter
}

// GetPartyExtractor returns the compiled party rules.
func (c *Container) GetPartyExtractor() *textutils.PartyExtractor {
	return c.parties
}

// CSVOptions returns the configured CSV writer options.
func (c *Container) CSVOptions() common.CSVOptions {
	return c.csv
}

// Close releases container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
