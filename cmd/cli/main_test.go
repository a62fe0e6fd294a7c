package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotFileBase(t *testing.T) {
	assert.Equal(t, "FGpct", plotFileBase("FG%"))
	assert.Equal(t, "a_b", plotFileBase("a/b"))
}

func TestCategoriesCmd(t *testing.T) {
	cmd := newCategoriesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Football")
	assert.Contains(t, out.String(), "PTS, AST")
}

func TestSampleAndAnalyzeCmd(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "players.csv")

	sample := newSampleCmd()
	sample.SetArgs([]string{"--sport", "basketbol", "--players", "40", "--seed", "3", "--out", csvPath})
	require.NoError(t, sample.Execute())

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Player,Pos,Age,PTS"))

	plotsDir := filepath.Join(dir, "plots")
	xlsxPath := filepath.Join(dir, "pts.xlsx")
	analyze := newAnalyzeCmd()
	var out bytes.Buffer
	analyze.SetOut(&out)
	analyze.SetArgs([]string{
		"--file", csvPath, "--category", "Basketball", "--column", "PTS",
		"--format", "text", "--plots", plotsDir, "--xlsx", xlsxPath,
	})
	require.NoError(t, analyze.Execute())

	assert.Contains(t, out.String(), "Column: PTS")
	assert.Contains(t, out.String(), "Required Sample (90%, ±0.1)")
	assert.FileExists(t, filepath.Join(plotsDir, "PTS-histogram.png"))
	assert.FileExists(t, filepath.Join(plotsDir, "PTS-boxplot.png"))
	assert.FileExists(t, xlsxPath)
}

func TestAnalyzeCmd_UnknownFormat(t *testing.T) {
	analyze := newAnalyzeCmd()
	analyze.SetArgs([]string{"--file", "x.csv", "--category", "Football", "--format", "yaml"})
	err := analyze.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
