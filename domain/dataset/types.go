// Package dataset holds the loaded table of player records together with a
// typed schema that is derived once, at load time.
package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"sportstat/domain/core"
)

// ColumnKind is the storage type of a column
type ColumnKind string

const (
	KindFloat  ColumnKind = "float"
	KindInt    ColumnKind = "int"
	KindString ColumnKind = "string"
	KindBool   ColumnKind = "bool"
)

// IsNumeric reports whether values of this kind can be analyzed
func (k ColumnKind) IsNumeric() bool {
	return k == KindFloat || k == KindInt
}

// Column describes one column of the schema
type Column struct {
	Name    string     `json:"name"`
	Kind    ColumnKind `json:"kind"`
	Missing int        `json:"missing"`
	Coerced bool       `json:"coerced,omitempty"` // textual column converted to numbers at load
}

// Schema is the ordered list of columns as found in the source file
type Schema []Column

// Dataset is an immutable table of player records
type Dataset struct {
	source string
	frame  dataframe.DataFrame
	schema Schema
	index  map[string]int
}

// New wraps a loaded frame. coerced names the columns that were converted
// from text to numbers during load.
func New(source string, frame dataframe.DataFrame, coerced map[string]bool) (*Dataset, error) {
	if frame.Err != nil {
		return nil, fmt.Errorf("invalid data frame: %w", frame.Err)
	}

	names := frame.Names()
	types := frame.Types()
	schema := make(Schema, len(names))
	index := make(map[string]int, len(names))
	for i, name := range names {
		col := frame.Col(name)
		missing := 0
		for _, isNaN := range col.IsNaN() {
			if isNaN {
				missing++
			}
		}
		schema[i] = Column{
			Name:    name,
			Kind:    kindOf(types[i]),
			Missing: missing,
			Coerced: coerced[name],
		}
		index[name] = i
	}

	return &Dataset{
		source: source,
		frame:  frame,
		schema: schema,
		index:  index,
	}, nil
}

func kindOf(t series.Type) ColumnKind {
	switch t {
	case series.Float:
		return KindFloat
	case series.Int:
		return KindInt
	case series.Bool:
		return KindBool
	default:
		return KindString
	}
}

// Source returns the name of the file the dataset was loaded from
func (d *Dataset) Source() string { return d.source }

// Len returns the number of rows
func (d *Dataset) Len() int { return d.frame.Nrow() }

// Names returns the column names in file order
func (d *Dataset) Names() []string {
	out := make([]string, len(d.schema))
	for i, c := range d.schema {
		out[i] = c.Name
	}
	return out
}

// Schema returns a copy of the typed schema
func (d *Dataset) Schema() Schema {
	out := make(Schema, len(d.schema))
	copy(out, d.schema)
	return out
}

// Column looks up a column description by name
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.schema[i], true
}

// IsNumeric reports whether the named column holds numbers
func (d *Dataset) IsNumeric(name string) bool {
	c, ok := d.Column(name)
	return ok && c.Kind.IsNumeric()
}

// NumericColumns returns the names of numeric columns in file order
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, c := range d.schema {
		if c.Kind.IsNumeric() {
			out = append(out, c.Name)
		}
	}
	return out
}

// Floats returns a fresh copy of a numeric column. Missing entries are NaN.
func (d *Dataset) Floats(name string) ([]float64, error) {
	c, ok := d.Column(name)
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	if !c.Kind.IsNumeric() {
		return nil, fmt.Errorf("%w: %q is %s", core.ErrColumnNotNumeric, name, c.Kind)
	}
	return d.frame.Col(name).Float(), nil
}
