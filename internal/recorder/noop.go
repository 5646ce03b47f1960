package recorder

import "StockScribe/internal/model"

// NoopRecorder discards every record. Used for dry runs where only logs
// are wanted.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Append(_ string, _ model.Summary) error { return nil }
func (n *NoopRecorder) Reset(_ []string) error                 { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
