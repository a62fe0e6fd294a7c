// Package loader reads player datasets from delimited text and Excel files.
package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"sportstat/adapters/loader/coercer"
	"sportstat/domain/core"
	"sportstat/domain/dataset"
	"sportstat/internal"
)

// fallbackDelimiter is used together with the Latin-1 fallback decoding
const fallbackDelimiter = ';'

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DataReader handles reading CSV and Excel files into datasets
type DataReader struct {
	coercer *coercer.TypeCoercer
	logger  *internal.Logger
}

// NewDataReader creates a reader. A nil logger uses the default logger.
func NewDataReader(cfg coercer.CoercionConfig, logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{
		coercer: coercer.NewTypeCoercer(cfg),
		logger:  logger,
	}
}

// LoadFile reads a dataset from disk
func (r *DataReader) LoadFile(ctx context.Context, path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewFileReadError(path, err)
	}
	defer f.Close()
	return r.Load(ctx, filepath.Base(path), f)
}

// Load reads a dataset from src. The file type is taken from the extension of
// name; anything that is not an Excel workbook is treated as delimited text.
func (r *DataReader) Load(ctx context.Context, name string, src io.Reader) (*dataset.Dataset, error) {
	start := time.Now()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, core.NewFileReadError(name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		rows, err = r.readExcel(data)
	default:
		rows, err = r.readDelimited(name, data)
	}
	if err != nil {
		return nil, core.NewFileReadError(name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := r.buildDataset(name, rows)
	if err != nil {
		return nil, core.NewFileReadError(name, err)
	}

	r.logger.Info("[DataReader] %s loaded in %s (%d columns, %d rows)",
		name, time.Since(start).Round(time.Microsecond), len(ds.Names()), ds.Len())
	return ds, nil
}

// readDelimited tries UTF-8 with a sniffed delimiter first, then Latin-1 with
// a semicolon delimiter.
func (r *DataReader) readDelimited(name string, data []byte) ([][]string, error) {
	trimmed := bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(trimmed) {
		text := string(trimmed)
		delimiter := SniffDelimiter(text)
		rows, err := parseDelimited(text, delimiter)
		if err == nil {
			r.logger.Debug("[DataReader] %s parsed as UTF-8 with delimiter %q", name, delimiter)
			return rows, nil
		}
		r.logger.Warn("[DataReader] %s: UTF-8 parse with delimiter %q failed: %v; retrying as Latin-1", name, delimiter, err)
	} else {
		r.logger.Warn("[DataReader] %s is not valid UTF-8; retrying as Latin-1", name)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("latin-1 decoding failed: %w", err)
	}
	rows, err := parseDelimited(string(decoded), fallbackDelimiter)
	if err != nil {
		return nil, fmt.Errorf("latin-1 parse with %q failed: %w", fallbackDelimiter, err)
	}
	return rows, nil
}

func parseDelimited(text string, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) > width {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", i+2, width, len(row))
		}
	}
	return rows, nil
}

// readExcel reads the first sheet of a workbook
func (r *DataReader) readExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}
	r.logger.Debug("[DataReader] sheet %s read (%d rows)", sheets[0], len(rows))
	return rows, nil
}

// buildDataset normalises headers and cells, detects column types and applies
// best-effort numeric coercion to textual columns.
func (r *DataReader) buildDataset(name string, rows [][]string) (*dataset.Dataset, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have a header row and at least one data row")
	}

	headers := normalizeHeaders(rows[0])
	records := make([][]string, len(rows))
	records[0] = headers
	for i, row := range rows[1:] {
		record := make([]string, len(headers))
		for j := range headers {
			if j < len(row) && !r.coercer.IsMissing(row[j]) {
				record[j] = strings.TrimSpace(row[j])
			} else {
				record[j] = "NaN"
			}
		}
		records[i+1] = record
	}

	frame := loadFrame(records, nil)
	if frame.Err != nil {
		return nil, frame.Err
	}

	forced := make(map[string]series.Type)
	coerced := make(map[string]bool)
	for j, t := range frame.Types() {
		if t != series.String {
			continue
		}
		column := columnValues(records, j)
		analysis := r.coercer.AnalyzeColumn(column)
		if !r.coercer.ShouldCoerce(analysis) {
			continue
		}
		for i, v := range r.coercer.CoerceColumn(column) {
			records[i+1][j] = v
		}
		forced[headers[j]] = series.Float
		coerced[headers[j]] = true
		r.logger.Debug("[DataReader] %s: column %q coerced to numbers (%.0f%% parseable)",
			name, headers[j], analysis.NumericRatio*100)
	}

	if len(forced) > 0 {
		frame = loadFrame(records, forced)
		if frame.Err != nil {
			return nil, frame.Err
		}
	}

	return dataset.New(name, frame, coerced)
}

func loadFrame(records [][]string, types map[string]series.Type) dataframe.DataFrame {
	opts := []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"NaN"}),
	}
	if len(types) > 0 {
		opts = append(opts, dataframe.WithTypes(types))
	}
	return dataframe.LoadRecords(records, opts...)
}

func columnValues(records [][]string, j int) []string {
	out := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if record[j] == "NaN" {
			out = append(out, "")
			continue
		}
		out = append(out, record[j])
	}
	return out
}

// normalizeHeaders trims names, names blank headers and de-duplicates repeats
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		headers[i] = name
	}
	return headers
}
