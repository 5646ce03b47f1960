// Package recorder persists summary records, one destination per ticker.
package recorder

import "StockScribe/internal/model"

// Recorder appends summary records to per-ticker storage.
type Recorder interface {
	// Append writes one record for the ticker. Empty records are a no-op.
	Append(ticker string, rec model.Summary) error
	// Reset discards previously persisted data for the given tickers.
	Reset(tickers []string) error
	Close() error
}
