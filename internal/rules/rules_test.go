package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/parsererror"
)

const rulesYAML = `
ordered_by:
  - name: "paguar nga"
    pattern: '(?i)paguar\s+nga\s*[:-]?\s*(.+)'
beneficiary:
  - name: "perfitues"
    pattern: 'perfitues\s*[:-]?\s*(.+)'
    unless: "refund"
`

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestStore_LoadExtractor(t *testing.T) {
	logger := logging.NewMockLogger()
	s := NewStore(writeRules(t, rulesYAML), logger)

	p, err := s.LoadExtractor()
	require.NoError(t, err)

	assert.Equal(t, "BLEDI", p.ExtractOrderedBy("Paguar nga: BLEDI"))
	assert.Equal(t, "ARTA SHPK", p.ExtractBeneficiary("PERFITUES - ARTA SHPK"))
	assert.Equal(t, "VODAFONE perfitues X", p.ExtractBeneficiary("Ft - Ben - VODAFONE perfitues X"))
	assert.Empty(t, p.ExtractBeneficiary("Perfitues: ALBA refund"))
	assert.True(t, logger.HasEntry("INFO", "Loaded party rules"))

	assert.Len(t, p.OrderedByRules(), 4)
	assert.Len(t, p.BeneficiaryRules(), 6)
}

func TestStore_NoFileConfigured(t *testing.T) {
	f, err := NewStore("", nil).Load()
	require.NoError(t, err)
	assert.Empty(t, f.OrderedBy)

	p, err := f.Compile()
	require.NoError(t, err)
	assert.Len(t, p.OrderedByRules(), 3)
}

func TestStore_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr interface{}
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: &parsererror.ValidationError{},
		},
		{
			name:    "bad yaml",
			path:    func(t *testing.T) string { return writeRules(t, "ordered_by: [") },
			wantErr: &parsererror.ParseError{},
		},
		{
			name:    "bad regex",
			path:    func(t *testing.T) string { return writeRules(t, "ordered_by:\n  - name: x\n    pattern: '(oops'\n") },
			wantErr: &parsererror.ValidationError{},
		},
		{
			name:    "empty pattern",
			path:    func(t *testing.T) string { return writeRules(t, "beneficiary:\n  - name: x\n") },
			wantErr: &parsererror.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.path(t), nil).LoadExtractor()
			require.Error(t, err)
			switch tt.wantErr.(type) {
			case *parsererror.ValidationError:
				var ve *parsererror.ValidationError
				assert.ErrorAs(t, err, &ve)
			case *parsererror.ParseError:
				var pe *parsererror.ParseError
				assert.ErrorAs(t, err, &pe)
			}
		})
	}
}

func TestStore_FindConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "rules.yaml"), []byte(rulesYAML), 0600))
	t.Chdir(dir)

	s := NewStore("rules.yaml", nil)
	path, err := s.FindConfigFile("rules.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", "rules.yaml"), path)

	_, err = s.FindConfigFile("absent.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
