// Package provider fetches recent intraday bars from market data sources.
package provider

import (
	"time"

	"StockScribe/internal/model"
)

// Query selects the slice of history to fetch.
type Query struct {
	Range    string // lookback window, e.g. "2d"
	Interval string // bar size, e.g. "5m"
	PrePost  bool   // include pre/post market bars
}

// Provider defines the interface for fetching bar history. A fetch that
// reaches the source but finds no bars returns an empty frame and a nil
// error; errors are reserved for transport and decoding failures.
type Provider interface {
	Fetch(symbol string, q Query) (*model.Frame, error)
	Name() string
}

// barFrame assembles a frame from parallel slices, columns in OHLCV order.
func barFrame(idx []time.Time, open, high, low, closes, vol []float64) *model.Frame {
	return &model.Frame{
		Index: idx,
		Columns: []model.Series{
			{Label: model.Label{model.ColOpen}, Values: open},
			{Label: model.Label{model.ColHigh}, Values: high},
			{Label: model.Label{model.ColLow}, Values: low},
			{Label: model.Label{model.ColClose}, Values: closes},
			{Label: model.Label{model.ColVolume}, Values: vol},
		},
	}
}
