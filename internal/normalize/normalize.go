// Package normalize coerces raw provider frames into the canonical bar table
// shape expected by the rest of the pipeline.
package normalize

import (
	"math"
	"sort"
	"time"

	"StockScribe/internal/model"
)

// Normalize applies the canonical schema to a raw frame: compound column
// labels are reduced to their first element, rows with a missing value in
// any present OHLCV column are dropped, and rows are ordered ascending by
// timestamp with duplicates collapsed (first occurrence wins). Absent
// columns stay absent; they never disqualify rows. The input is not
// modified.
func Normalize(f *model.Frame) *model.Frame {
	if f == nil {
		return &model.Frame{}
	}
	return sortByTime(dropIncomplete(cleanLabels(f)))
}

// cleanLabels keeps only the first element of each compound column label.
func cleanLabels(f *model.Frame) *model.Frame {
	cols := make([]model.Series, len(f.Columns))
	for i, c := range f.Columns {
		cols[i] = model.Series{Label: model.Label{c.Label.Name()}, Values: c.Values}
	}
	return &model.Frame{Index: f.Index, Columns: cols}
}

// dropIncomplete removes every row with a NaN in any present OHLCV column.
func dropIncomplete(f *model.Frame) *model.Frame {
	var required [][]float64
	for _, name := range model.OHLCVColumns {
		if col, ok := f.Column(name); ok {
			required = append(required, col)
		}
	}

	keep := make([]int, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		complete := true
		for _, col := range required {
			if i >= len(col) || math.IsNaN(col[i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	if len(keep) == f.Len() {
		return f
	}
	return selectRows(f, keep)
}

// sortByTime orders rows ascending by timestamp and collapses duplicate
// timestamps, keeping the first occurrence.
func sortByTime(f *model.Frame) *model.Frame {
	order := make([]int, f.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return f.Index[order[a]].Before(f.Index[order[b]])
	})

	rows := make([]int, 0, len(order))
	var last time.Time
	for _, i := range order {
		if len(rows) > 0 && f.Index[i].Equal(last) {
			continue
		}
		rows = append(rows, i)
		last = f.Index[i]
	}

	alreadyOrdered := len(rows) == f.Len() && sort.SliceIsSorted(f.Index, func(i, j int) bool {
		return f.Index[i].Before(f.Index[j])
	})
	if alreadyOrdered {
		return f
	}
	return selectRows(f, rows)
}

// selectRows builds a frame containing only the given row indices, in order.
// Columns shorter than the index are padded with NaN.
func selectRows(f *model.Frame, rows []int) *model.Frame {
	idx := make([]time.Time, len(rows))
	for j, i := range rows {
		idx[j] = f.Index[i]
	}
	cols := make([]model.Series, len(f.Columns))
	for ci, c := range f.Columns {
		vals := make([]float64, len(rows))
		for j, i := range rows {
			if i < len(c.Values) {
				vals[j] = c.Values[i]
			} else {
				vals[j] = math.NaN()
			}
		}
		cols[ci] = model.Series{Label: c.Label, Values: vals}
	}
	return &model.Frame{Index: idx, Columns: cols}
}
