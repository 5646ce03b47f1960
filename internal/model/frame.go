package model

import (
	"math"
	"time"
)

// Label identifies a frame column. Multi-symbol fetch APIs return compound
// labels such as {"Close", "AAPL"}; the first element is the field name.
type Label []string

// Name returns the canonical column name, the first element of the label.
func (l Label) Name() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Series is one labeled column of float64 values, aligned with the frame index.
type Series struct {
	Label  Label
	Values []float64
}

// Frame is a column-oriented table of bars indexed by timestamp, as returned
// by a provider. Columns may carry compound labels and missing values (NaN)
// until the frame has been normalized.
type Frame struct {
	Index   []time.Time
	Columns []Series
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Index)
}

// Empty reports whether the frame has no rows.
func (f *Frame) Empty() bool { return f.Len() == 0 }

// Column returns the values of the first column whose canonical name matches.
// Duplicate labels can occur after normalization of a multi-symbol fetch; the
// first occurrence wins.
func (f *Frame) Column(name string) ([]float64, bool) {
	if f == nil {
		return nil, false
	}
	for _, c := range f.Columns {
		if c.Label.Name() == name {
			return c.Values, true
		}
	}
	return nil, false
}

// Value returns the named column's value at row i, or NaN when the column is
// absent or the row out of range.
func (f *Frame) Value(name string, i int) float64 {
	col, ok := f.Column(name)
	if !ok || i < 0 || i >= len(col) {
		return math.NaN()
	}
	return col[i]
}

// Bar assembles row i into a Bar, with NaN for absent columns.
func (f *Frame) Bar(i int) Bar {
	return Bar{
		Time:   f.Index[i],
		Open:   f.Value(ColOpen, i),
		High:   f.Value(ColHigh, i),
		Low:    f.Value(ColLow, i),
		Close:  f.Value(ColClose, i),
		Volume: f.Value(ColVolume, i),
	}
}

// Bars materializes the whole frame as a slice of bars.
func (f *Frame) Bars() []Bar {
	bars := make([]Bar, f.Len())
	for i := range bars {
		bars[i] = f.Bar(i)
	}
	return bars
}
