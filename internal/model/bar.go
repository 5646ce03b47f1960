package model

import "time"

// Bar is a single OHLCV observation. Its timestamp comes from the provider
// and is assumed to be UTC.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Canonical bar column names.
const (
	ColOpen   = "Open"
	ColHigh   = "High"
	ColLow    = "Low"
	ColClose  = "Close"
	ColVolume = "Volume"
)

// OHLCVColumns lists the five canonical bar fields in order.
var OHLCVColumns = []string{ColOpen, ColHigh, ColLow, ColClose, ColVolume}
