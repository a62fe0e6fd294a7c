package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	domainstats "sportstat/domain/stats"
)

const (
	analysisSheet = "Analysis"
	sampleSheet   = "Sample"
)

// WriteXLSX writes a workbook with the result on one sheet and the cleaned
// sample on another
func WriteXLSX(w io.Writer, r *domainstats.AnalysisResult, sample []float64) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", analysisSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(analysisSheet, "A1", &[]interface{}{"Statistic", "Value"}); err != nil {
		return err
	}
	for i, row := range Rows(r) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(analysisSheet, cell, &[]interface{}{row.Label, row.Raw}); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(analysisSheet, "A", "A", 48); err != nil {
		return err
	}

	if _, err := f.NewSheet(sampleSheet); err != nil {
		return fmt.Errorf("failed to add sample sheet: %w", err)
	}
	if err := f.SetCellValue(sampleSheet, "A1", r.Column); err != nil {
		return err
	}
	for i, v := range sample {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sampleSheet, cell, v); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
