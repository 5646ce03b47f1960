package provider

import (
	"time"

	"StockScribe/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
// A set Frame or Err wins; otherwise synthetic bars are generated around
// Base.
type MockProvider struct {
	Frame *model.Frame
	Err   error
	Base  float64
	Bars  int
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Fetch(_ string, _ Query) (*model.Frame, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Frame != nil {
		return m.Frame, nil
	}
	return GenerateBars(m.Base, m.Bars), nil
}

// GenerateBars builds count synthetic 5-minute bars drifting around base.
func GenerateBars(base float64, count int) *model.Frame {
	if base == 0 {
		base = 100
	}
	if count <= 0 {
		count = 100
	}
	start := time.Now().UTC().Truncate(5 * time.Minute).Add(-time.Duration(count) * 5 * time.Minute)

	idx := make([]time.Time, count)
	open := make([]float64, count)
	high := make([]float64, count)
	low := make([]float64, count)
	closes := make([]float64, count)
	vol := make([]float64, count)
	for i := 0; i < count; i++ {
		p := base * (1 + float64(i-count/2)*0.001)
		idx[i] = start.Add(time.Duration(i) * 5 * time.Minute)
		open[i] = p * 0.999
		high[i] = p * 1.005
		low[i] = p * 0.995
		closes[i] = p
		vol[i] = 1000000
	}
	return barFrame(idx, open, high, low, closes, vol)
}
