package report

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fjacquet/stmt-ledger/internal/batch"
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
)

var generatedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func sampleResults() []batch.Result {
	return []batch.Result{
		{
			ConversionID: "id-1",
			Input:        "in/a.pdf",
			Output:       "out/a.csv",
			Summary:      models.Summary{Records: 3, Unreconciled: 1, TotalDebit: "10.00", TotalCredit: "5.00"},
			Duration:     1500 * time.Millisecond,
		},
		{ConversionID: "id-2", Input: "in/b.pdf", Output: "out/b.csv", Err: errors.New("no text")},
	}
}

func TestNewBatchReport(t *testing.T) {
	r := NewBatchReport(sampleResults(), generatedAt)

	assert.Equal(t, 1, r.Converted)
	assert.Equal(t, 1, r.Failed)
	require.Len(t, r.Files, 2)

	assert.Equal(t, StatusConverted, r.Files[0].Status)
	assert.Equal(t, 3, r.Files[0].Records)
	assert.Equal(t, int64(1500), r.Files[0].DurationMS)

	assert.Equal(t, StatusFailed, r.Files[1].Status)
	assert.Equal(t, "no text", r.Files[1].Error)
	assert.Empty(t, r.Files[1].Output)
}

func TestReportGenerator_GenerateReport_JSON(t *testing.T) {
	g := NewReportGenerator(logging.NewMockLogger())
	out, err := g.GenerateReport(NewBatchReport(sampleResults(), generatedAt), "json")
	require.NoError(t, err)

	var got BatchReport
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, 1, got.Converted)
	assert.Equal(t, "10.00", got.Files[0].TotalDebit)
	assert.Contains(t, string(out), `"conversion_id": "id-1"`)
}

func TestReportGenerator_GenerateReport_YAML(t *testing.T) {
	g := NewReportGenerator(nil)
	out, err := g.GenerateReport(NewBatchReport(sampleResults(), generatedAt), "yaml")
	require.NoError(t, err)

	var got BatchReport
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, 1, got.Failed)
	assert.Contains(t, string(out), "status: failed")
}

func TestReportGenerator_GenerateReport_Unsupported(t *testing.T) {
	_, err := NewReportGenerator(nil).GenerateReport(&BatchReport{}, "xml")
	assert.EqualError(t, err, "unsupported report format: xml")
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, "yaml", FormatForPath("report.YML"))
	assert.Equal(t, "yaml", FormatForPath("report.yaml"))
	assert.Equal(t, "json", FormatForPath("report.json"))
	assert.Equal(t, "json", FormatForPath("report"))
}
