package model

import (
	"math"
	"strconv"
)

// Summary is the flat record persisted once per ticker per run: the most
// recent bar joined with the latest value of each indicator series.
type Summary struct {
	Timestamp    string
	CurrentPrice float64
	Ticker       string
	Open         float64
	High         float64
	Low          float64
	Close        float64
	Volume       float64
	RSI          float64
	SMA10        float64
	SMA50        float64
	SMA200       float64
}

// SummaryHeader lists the persisted field names in their fixed order.
var SummaryHeader = []string{
	"Timestamp", "Current Price", "Ticker",
	"Open", "High", "Low", "Close", "Volume",
	"RSI", "SMA10", "SMA50", "SMA200",
}

// Empty reports whether the record carries no data (nothing to persist).
func (s Summary) Empty() bool { return s.Ticker == "" && s.Timestamp == "" }

// Values renders the record in header order. Undefined numeric values (NaN)
// render as empty fields.
func (s Summary) Values() []string {
	return []string{
		s.Timestamp,
		formatValue(s.CurrentPrice),
		s.Ticker,
		formatValue(s.Open),
		formatValue(s.High),
		formatValue(s.Low),
		formatValue(s.Close),
		formatValue(s.Volume),
		formatValue(s.RSI),
		formatValue(s.SMA10),
		formatValue(s.SMA50),
		formatValue(s.SMA200),
	}
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
