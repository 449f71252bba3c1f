package textparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/stmt-ledger/internal/common"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/parser"
	"fjacquet/stmt-ledger/internal/parsererror"
)

func TestAdapter_ExtractLines(t *testing.T) {
	a := NewAdapter(logging.NewDiscardLogger(), nil, common.DefaultCSVOptions())

	lines, err := a.ExtractLines(strings.NewReader("\uFEFF01-Jan-24 OPENING BALANCE 10.00\r\n\n  By Order Of: X  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"01-Jan-24 OPENING BALANCE 10.00", "By Order Of: X"}, lines)
}

func TestAdapter_ExtractLines_TooLong(t *testing.T) {
	a := NewAdapter(logging.NewDiscardLogger(), nil, common.DefaultCSVOptions())

	_, err := a.ExtractLines(strings.NewReader(strings.Repeat("x", maxLineBytes+1)))
	var pe *parsererror.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestAdapter_Parse(t *testing.T) {
	a := NewAdapter(logging.NewDiscardLogger(), nil, common.DefaultCSVOptions())

	l, err := a.Parse(strings.NewReader("02-Jan-24 COMMISSION 50.00 950.00\n03-Jan-24 COMMISSION 50.00 900.00\n"))
	require.NoError(t, err)
	require.Len(t, l.Records, 2)
	assert.Nil(t, l.Opening)
	assert.Equal(t, "950.00", l.Records[0].ToRow().CalculatedBalance)
	assert.Equal(t, "900.00", l.Records[1].ToRow().CalculatedBalance)
	assert.Equal(t, "0.00", l.Records[1].ToRow().Difference)
}

func TestAdapter_ConvertToCSV(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lines.txt")
	output := filepath.Join(dir, "lines.csv")
	require.NoError(t, os.WriteFile(input, []byte("Opening balance 100.00\n02-Jan-24 CASH DEPOSIT 25.00 125.00\n"), 0600))

	a := NewAdapter(logging.NewDiscardLogger(), nil, common.CSVOptions{Delimiter: ';'})
	_, err := a.ConvertToCSV(input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "02-Jan-24;02-Jan-24 CASH DEPOSIT 25.00 125.00;CASH DEPOSIT;;;;25.00;125.00;125.00;0.00")
}

func TestAdapter_InterfaceCompliance(t *testing.T) {
	var _ parser.FullParser = &Adapter{}
}
