// Package summary joins the most recent bar of a frame with the latest
// indicator values into a single persistable record.
package summary

import (
	"math"

	"StockScribe/internal/model"
	"StockScribe/internal/timefmt"
)

// Build assembles the summary record for the newest row of f. The frame is
// expected to be normalized (ascending, complete rows); the newest row is
// the last one. An empty frame yields an empty record. Indicator slices may
// be shorter than the frame or nil; missing values come through as NaN and
// render as blank fields.
func Build(ticker string, f *model.Frame, clock *timefmt.Formatter, rsi, sma10, sma50, sma200 []float64) model.Summary {
	if f == nil || f.Empty() {
		return model.Summary{}
	}
	i := f.Len() - 1
	latestClose := f.Value(model.ColClose, i)
	return model.Summary{
		Timestamp:    clock.Format(f.Index[i]),
		CurrentPrice: latestClose,
		Ticker:       ticker,
		Open:         f.Value(model.ColOpen, i),
		High:         f.Value(model.ColHigh, i),
		Low:          f.Value(model.ColLow, i),
		Close:        latestClose,
		Volume:       f.Value(model.ColVolume, i),
		RSI:          at(rsi, i),
		SMA10:        at(sma10, i),
		SMA50:        at(sma50, i),
		SMA200:       at(sma200, i),
	}
}

func at(series []float64, i int) float64 {
	if i < 0 || i >= len(series) {
		return math.NaN()
	}
	return series[i]
}
