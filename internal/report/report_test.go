package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	domainstats "sportstat/domain/stats"
	"sportstat/internal/analysis"
)

func referenceResult(t *testing.T) *domainstats.AnalysisResult {
	t.Helper()
	res, err := analysis.Analyze(analysis.NewSample("PTS", []float64{1, 2, 3, 4, 5}), domainstats.DefaultParams())
	require.NoError(t, err)
	return res
}

func TestText(t *testing.T) {
	out := Text(referenceResult(t))

	assert.Contains(t, out, "Column: PTS\n")
	assert.Contains(t, out, "Mean: 3.000\n")
	assert.Contains(t, out, "Variance: 2.500\n")
	assert.Contains(t, out, "95% Confidence Interval (Mean): (1.614, 4.386)\n")
	assert.Contains(t, out, "95% Confidence Interval (Variance): (0.897, 20.643)\n")
	assert.Contains(t, out, "p: 0.10119\n")
	assert.Contains(t, out, "H0 not rejected")
	assert.Contains(t, out, "Required Sample (90%, ±0.1): 677\n")
}

func TestMarkdownEscapesColumnNames(t *testing.T) {
	res := referenceResult(t)
	res.Column = "a|b<script>"

	md := Markdown(res)
	assert.Contains(t, md, `a\|b&lt;script&gt;`)

	html := string(HTML(res))
	assert.Contains(t, html, "<table>")
	assert.NotContains(t, html, "<script>")
}

func TestWriteXLSX(t *testing.T) {
	res := referenceResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, res, []float64{1, 2, 3, 4, 5}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{analysisSheet, sampleSheet}, f.GetSheetList())

	label, err := f.GetCellValue(analysisSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Column", label)

	rows, err := f.GetRows(sampleSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "PTS", rows[0][0])
	assert.Equal(t, "5", strings.TrimSpace(rows[5][0]))
}
