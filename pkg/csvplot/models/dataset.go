// Package models defines data structures for tabular datasets and charts.
package models

import (
	"math"

	"github.com/rocketlaunchr/dataframe-go"
)

// ColumnKind is the scalar type inferred for a column.
type ColumnKind string

const (
	// KindInteger marks a column whose values are all base-10 integers.
	KindInteger ColumnKind = "integer"
	// KindFloat marks a numeric column with decimals or missing values.
	KindFloat ColumnKind = "float"
	// KindText marks a column holding at least one non-numeric value.
	KindText ColumnKind = "text"
)

// Numeric reports whether columns of this kind are plotted.
func (k ColumnKind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

// Column describes one column of a Dataset.
type Column struct {
	// Name is the (de-duplicated) header name.
	Name string `json:"name"`
	// Kind is the inferred scalar type.
	Kind ColumnKind `json:"kind"`
	// Missing counts values that matched a missing-value marker.
	Missing int `json:"missing"`
}

// Dataset is an immutable table of named columns aligned by row position.
type Dataset struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Frame stores the column values. Integer columns are SeriesInt64,
	// float columns SeriesFloat64 and text columns SeriesString.
	Frame *dataframe.DataFrame `json:"-"`
	// Columns lists column metadata in file order.
	Columns []Column `json:"columns"`
}

// NRows returns the number of data rows (header excluded).
func (d *Dataset) NRows() int {
	if d == nil || d.Frame == nil {
		return 0
	}
	return d.Frame.NRows()
}

// NumericColumns returns the columns that take part in the chart, in file order.
func (d *Dataset) NumericColumns() []Column {
	var cols []Column
	for _, c := range d.Columns {
		if c.Kind.Numeric() {
			cols = append(cols, c)
		}
	}
	return cols
}

// Float64s returns the values of a numeric column as float64, with NaN for
// missing values. The second result is false for unknown or text columns.
func (d *Dataset) Float64s(name string) ([]float64, bool) {
	if d == nil || d.Frame == nil {
		return nil, false
	}
	idx, err := d.Frame.NameToColumn(name)
	if err != nil {
		return nil, false
	}

	switch s := d.Frame.Series[idx].(type) {
	case *dataframe.SeriesFloat64:
		out := make([]float64, len(s.Values))
		copy(out, s.Values)
		return out, true
	case *dataframe.SeriesInt64:
		out := make([]float64, s.NRows())
		for i := range out {
			v, ok := s.Value(i).(int64)
			if !ok {
				out[i] = math.NaN()
				continue
			}
			out[i] = float64(v)
		}
		return out, true
	default:
		return nil, false
	}
}
