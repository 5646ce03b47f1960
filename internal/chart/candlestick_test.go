package chart

import (
	"os"
	"strings"
	"testing"
	"time"

	"StockScribe/internal/model"
	"StockScribe/internal/timefmt"
)

func priceFrame(n int) *model.Frame {
	start := time.Date(2024, 7, 15, 13, 30, 0, 0, time.UTC)
	idx := make([]time.Time, n)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		idx[i] = start.Add(time.Duration(i) * 5 * time.Minute)
		open[i] = 100 + float64(i)
		high[i] = 101 + float64(i)
		low[i] = 99 + float64(i)
		closes[i] = 100.5 + float64(i)
	}
	return &model.Frame{
		Index: idx,
		Columns: []model.Series{
			{Label: model.Label{model.ColOpen}, Values: open},
			{Label: model.Label{model.ColHigh}, Values: high},
			{Label: model.Label{model.ColLow}, Values: low},
			{Label: model.Label{model.ColClose}, Values: closes},
		},
	}
}

func TestRenderWritesHTML(t *testing.T) {
	dir := t.TempDir()
	c := NewCandlestick(dir, timefmt.New(""))

	if err := c.Render("AAPL", priceFrame(5)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(c.Path("AAPL"))
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "AAPL Candlestick Chart") {
		t.Error("chart html missing title")
	}
	// 13:30 UTC renders as 09:30 eastern on the axis.
	if !strings.Contains(html, "09:30") {
		t.Error("chart html missing exchange-local axis label")
	}
}

func TestRenderEmptyFrameSkips(t *testing.T) {
	dir := t.TempDir()
	c := NewCandlestick(dir, timefmt.New(""))

	if err := c.Render("AAPL", &model.Frame{}); err != nil {
		t.Fatalf("Render empty: %v", err)
	}
	if _, err := os.Stat(c.Path("AAPL")); !os.IsNotExist(err) {
		t.Error("empty frame must not produce a chart file")
	}
}

func TestRenderMissingColumnSkips(t *testing.T) {
	dir := t.TempDir()
	c := NewCandlestick(dir, timefmt.New(""))
	f := &model.Frame{
		Index: []time.Time{time.Date(2024, 7, 15, 13, 30, 0, 0, time.UTC)},
		Columns: []model.Series{
			{Label: model.Label{model.ColClose}, Values: []float64{100}},
		},
	}
	if err := c.Render("AAPL", f); err != nil {
		t.Fatalf("Render partial: %v", err)
	}
	if _, err := os.Stat(c.Path("AAPL")); !os.IsNotExist(err) {
		t.Error("frame without price columns must not produce a chart file")
	}
}
