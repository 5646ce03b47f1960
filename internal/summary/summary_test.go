package summary

import (
	"math"
	"testing"
	"time"

	"StockScribe/internal/model"
	"StockScribe/internal/timefmt"
)

func barFrame(n int) *model.Frame {
	start := time.Date(2024, 7, 15, 13, 30, 0, 0, time.UTC)
	idx := make([]time.Time, n)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	closes := make([]float64, n)
	vol := make([]float64, n)
	for i := 0; i < n; i++ {
		idx[i] = start.Add(time.Duration(i) * 5 * time.Minute)
		open[i] = 100 + float64(i)
		high[i] = 101 + float64(i)
		low[i] = 99 + float64(i)
		closes[i] = 100.5 + float64(i)
		vol[i] = 1000 * float64(i+1)
	}
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

func TestBuildTakesNewestBar(t *testing.T) {
	f := barFrame(3)
	rsi := []float64{math.NaN(), 60, 65}
	sma10 := []float64{math.NaN(), math.NaN(), 101.5}

	got := Build("AAPL", f, timefmt.New(""), rsi, sma10, nil, nil)

	if got.Empty() {
		t.Fatal("record should not be empty")
	}
	if got.Ticker != "AAPL" {
		t.Errorf("Ticker = %q, want AAPL", got.Ticker)
	}
	if got.Timestamp != "2024-07-15 09:40:00 EDT" {
		t.Errorf("Timestamp = %q, want 2024-07-15 09:40:00 EDT", got.Timestamp)
	}
	if got.Open != 102 || got.High != 103 || got.Low != 101 || got.Close != 102.5 || got.Volume != 3000 {
		t.Errorf("bar fields = %+v, want newest row", got)
	}
	if got.CurrentPrice != got.Close {
		t.Errorf("CurrentPrice = %v, want latest close %v", got.CurrentPrice, got.Close)
	}
	if got.RSI != 65 {
		t.Errorf("RSI = %v, want 65", got.RSI)
	}
	if got.SMA10 != 101.5 {
		t.Errorf("SMA10 = %v, want 101.5", got.SMA10)
	}
	if !math.IsNaN(got.SMA50) || !math.IsNaN(got.SMA200) {
		t.Errorf("absent indicator series should yield NaN, got SMA50=%v SMA200=%v", got.SMA50, got.SMA200)
	}
}

func TestBuildEmptyFrame(t *testing.T) {
	got := Build("AAPL", &model.Frame{}, timefmt.New(""), nil, nil, nil, nil)
	if !got.Empty() {
		t.Errorf("empty frame should build an empty record, got %+v", got)
	}
	got = Build("AAPL", nil, timefmt.New(""), nil, nil, nil, nil)
	if !got.Empty() {
		t.Errorf("nil frame should build an empty record, got %+v", got)
	}
}

func TestBuildMissingColumns(t *testing.T) {
	f := &model.Frame{
		Index: []time.Time{time.Date(2024, 7, 15, 13, 30, 0, 0, time.UTC)},
		Columns: []model.Series{
			{Label: model.Label{model.ColClose}, Values: []float64{250}},
		},
	}

	got := Build("TSLA", f, timefmt.New(""), nil, nil, nil, nil)

	if got.Empty() {
		t.Fatal("record with a close should not be empty")
	}
	if got.Close != 250 || got.CurrentPrice != 250 {
		t.Errorf("Close = %v CurrentPrice = %v, want 250", got.Close, got.CurrentPrice)
	}
	if !math.IsNaN(got.Open) || !math.IsNaN(got.Volume) {
		t.Errorf("absent bar columns should yield NaN, got Open=%v Volume=%v", got.Open, got.Volume)
	}
}

func TestBuildShortIndicatorSeries(t *testing.T) {
	f := barFrame(5)
	got := Build("MSFT", f, timefmt.New(""), []float64{50}, nil, nil, nil)
	if !math.IsNaN(got.RSI) {
		t.Errorf("short RSI series should yield NaN at newest row, got %v", got.RSI)
	}
}

func TestValuesRenderNaNAsBlank(t *testing.T) {
	f := barFrame(1)
	got := Build("NVDA", f, timefmt.New(""), nil, nil, nil, nil)
	vals := got.Values()
	if len(vals) != len(model.SummaryHeader) {
		t.Fatalf("values len = %d, want %d", len(vals), len(model.SummaryHeader))
	}
	// RSI and the three SMAs are undefined for a single bar.
	for _, i := range []int{8, 9, 10, 11} {
		if vals[i] != "" {
			t.Errorf("%s = %q, want blank", model.SummaryHeader[i], vals[i])
		}
	}
}
