package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/stmt-ledger/cmd/root"
	"fjacquet/stmt-ledger/internal/config"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "stmt-ledger", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "ledger CSV")
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"mode", ""},
		{"config", ""},
		{"log-level", ""},
		{"log-format", ""},
		{"csv-delimiter", ""},
		{"rules", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.shorthand, f.Shorthand)
		})
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	err := root.ApplyFlags(cfg, root.CommonFlags{
		LogLevel:     "debug",
		LogFormat:    "json",
		CSVDelimiter: ";",
		RulesFile:    "rules.yaml",
		Mode:         "POS",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "rules.yaml", cfg.Conversion.RulesFile)
	assert.Equal(t, "pos", cfg.Conversion.DefaultMode)
}

func TestApplyFlags_Invalid(t *testing.T) {
	assert.Error(t, root.ApplyFlags(config.Default(), root.CommonFlags{Mode: "card"}))
	assert.Error(t, root.ApplyFlags(config.Default(), root.CommonFlags{CSVDelimiter: ";;"}))
}

func TestApplyFlags_EmptyKeepsConfig(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, root.ApplyFlags(cfg, root.CommonFlags{}))
	assert.Equal(t, config.Default(), cfg)
}

func TestGetLogger_BeforeBootstrap(t *testing.T) {
	assert.NotNil(t, root.GetLogger())
}
