package calculator

import (
	"go.uber.org/zap"

	"StockScribe/internal/model"
)

// CalculateRSI computes the Relative Strength Index series over the frame's
// Close column, aligned one-to-one with the frame rows. Average gain and
// loss use a rolling mean that shrinks to as few as one sample at the start
// of the series, so the output is defined from index 1 on; index 0 is NaN
// because the first delta is undefined. A zero average loss saturates the
// ratio: RSI is 100 when any gain was seen, NaN when gains and losses are
// both zero. Returns an empty series when Close is absent or the window is
// not positive.
func CalculateRSI(f *model.Frame, window int) []float64 {
	closes, ok := f.Column(model.ColClose)
	if !ok {
		zap.S().Errorw("frame missing required column", "column", model.ColClose)
		return nil
	}
	if window < 1 {
		zap.S().Errorw("rsi window must be positive", "window", window)
		return nil
	}

	n := len(closes)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		switch {
		case delta > 0:
			gains[i] = delta
		case delta < 0:
			losses[i] = -delta
		}
	}

	out := make([]float64, n)
	var gainSum, lossSum float64
	for i := 0; i < n; i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i >= window {
			gainSum -= gains[i-window]
			lossSum -= losses[i-window]
		}
		// Rolling sums must stay non-negative despite float error.
		if gainSum < 0 {
			gainSum = 0
		}
		if lossSum < 0 {
			lossSum = 0
		}
		samples := float64(min(i+1, window))
		avgGain := gainSum / samples
		avgLoss := lossSum / samples
		rs := avgGain / avgLoss
		// rs is +Inf when avgLoss is zero and NaN when both averages are
		// zero; both flow through the formula to 100 and NaN respectively.
		out[i] = 100 - 100/(1+rs)
	}
	return out
}
