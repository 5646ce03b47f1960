package calculator

import (
	"math"

	"go.uber.org/zap"

	"StockScribe/internal/model"
)

// CalculateSMA computes the simple moving average series of the frame's
// Close column, aligned one-to-one with the frame rows. Unlike the RSI, the
// SMA requires a full window before producing a value, so the first window-1
// outputs are NaN. Returns an empty series when Close is absent or the
// window is not positive.
func CalculateSMA(f *model.Frame, window int) []float64 {
	closes, ok := f.Column(model.ColClose)
	if !ok {
		zap.S().Errorw("frame missing required column", "column", model.ColClose)
		return nil
	}
	if window < 1 {
		zap.S().Errorw("sma window must be positive", "window", window)
		return nil
	}

	out := make([]float64, len(closes))
	var sum float64
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
