// Package chart renders per-ticker candlestick charts as standalone HTML.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"StockScribe/internal/model"
	"StockScribe/internal/timefmt"
)

// Candlestick writes one <ticker>_candlestick.html per render, with axis
// labels in the formatter's timezone.
type Candlestick struct {
	dir   string
	clock *timefmt.Formatter
}

func NewCandlestick(dir string, clock *timefmt.Formatter) *Candlestick {
	if dir == "" {
		dir = "."
	}
	return &Candlestick{dir: dir, clock: clock}
}

// Path returns the file a ticker's chart lands in.
func (c *Candlestick) Path(ticker string) string {
	return filepath.Join(c.dir, ticker+"_candlestick.html")
}

// Render draws the frame's bars. Empty frames and frames missing a price
// column are logged and skipped without error.
func (c *Candlestick) Render(ticker string, f *model.Frame) error {
	if f == nil || f.Empty() {
		zap.S().Warnw("no data to chart", "ticker", ticker)
		return nil
	}
	for _, name := range []string{model.ColOpen, model.ColHigh, model.ColLow, model.ColClose} {
		if _, ok := f.Column(name); !ok {
			zap.S().Warnw("chart skipped, price column missing", "ticker", ticker, "column", name)
			return nil
		}
	}

	k := charts.NewKLine()
	k.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: ticker + " candlestick"}),
		charts.WithTitleOpts(opts.Title{Title: ticker + " Candlestick Chart"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price"}),
	)

	loc := c.clock.Location()
	x := make([]string, f.Len())
	data := make([]opts.KlineData, f.Len())
	for i, b := range f.Bars() {
		x[i] = b.Time.In(loc).Format("2006-01-02 15:04")
		// ECharts candlestick order: open, close, low, high.
		data[i] = opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}}
	}
	k.SetXAxis(x).AddSeries(ticker, data)

	path := c.Path(ticker)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := k.Render(out); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	zap.S().Infow("candlestick chart written", "ticker", ticker, "path", path)
	return nil
}
