// Package rules loads extra party extraction rules from YAML.
package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/parsererror"
	"fjacquet/stmt-ledger/internal/textutils"
)

// RuleConfig is one rule as written in the rules file.
type RuleConfig struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Unless  string `yaml:"unless,omitempty"`
}

// File is the rules file layout.
type File struct {
	OrderedBy   []RuleConfig `yaml:"ordered_by"`
	Beneficiary []RuleConfig `yaml:"beneficiary"`
}

// Store resolves and loads a rules file.
type Store struct {
	RulesFile string
	logger    logging.Logger
}

// NewStore creates a store for rulesFile. An empty name means no extra rules.
func NewStore(rulesFile string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Store{RulesFile: rulesFile, logger: logger}
}

// FindConfigFile looks for filename as given, then under ./config, then
// under ~/.config/stmt-ledger.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "stmt-ledger", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads the rules file. A configured file that cannot be found is an
// error; no configured file yields an empty File.
func (s *Store) Load() (File, error) {
	if s.RulesFile == "" {
		return File{}, nil
	}

	path, err := s.FindConfigFile(s.RulesFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, &parsererror.ValidationError{FilePath: s.RulesFile, Reason: "rules file not found"}
		}
		return File{}, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return File{}, fmt.Errorf("error reading rules file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, &parsererror.ParseError{Parser: "rules", Field: "yaml", Value: path, Err: err}
	}

	s.logger.Info("Loaded party rules",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(f.OrderedBy)+len(f.Beneficiary)))
	return f, nil
}

// Compile turns the configured rules into a PartyExtractor. Built-in rules
// keep priority over loaded ones.
func (f File) Compile() (*textutils.PartyExtractor, error) {
	orderedBy, err := compileRules(f.OrderedBy)
	if err != nil {
		return nil, err
	}
	beneficiary, err := compileRules(f.Beneficiary)
	if err != nil {
		return nil, err
	}
	return textutils.NewPartyExtractor(orderedBy, beneficiary), nil
}

func compileRules(configs []RuleConfig) ([]textutils.PartyRule, error) {
	out := make([]textutils.PartyRule, 0, len(configs))
	for i, c := range configs {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("rule %d", i+1)
		}
		if c.Pattern == "" {
			return nil, &parsererror.ValidationError{Reason: fmt.Sprintf("%s: empty pattern", name)}
		}
		r, err := textutils.NewPartyRule(name, 0, c.Pattern, c.Unless)
		if err != nil {
			return nil, &parsererror.ValidationError{Reason: err.Error()}
		}
		out = append(out, r)
	}
	return out, nil
}

// LoadExtractor loads the store's file and compiles it.
func (s *Store) LoadExtractor() (*textutils.PartyExtractor, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}
	return f.Compile()
}
