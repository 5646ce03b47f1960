// Package metrics holds the Prometheus instrumentation for scrape runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the scraper.
type Metrics struct {
	TickerOutcomes *prometheus.CounterVec // labels: ticker, outcome
	RowsAppended   *prometheus.CounterVec // labels: ticker
	FetchDuration  *prometheus.HistogramVec
	RunDuration    prometheus.Histogram
	LastRunTime    prometheus.Gauge
	ChartsWritten  prometheus.Counter
}

// New registers and returns all scraper metrics.
func New() *Metrics {
	m := &Metrics{
		TickerOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockscribe_ticker_outcomes_total",
			Help: "Per-ticker processing outcomes (saved, no_data, fetch_error, write_error)",
		}, []string{"ticker", "outcome"}),
		RowsAppended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockscribe_rows_appended_total",
			Help: "Summary rows appended to per-ticker data files",
		}, []string{"ticker"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockscribe_fetch_duration_seconds",
			Help:    "Provider fetch latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockscribe_run_duration_seconds",
			Help:    "Wall time of a full multi-ticker run",
			Buckets: prometheus.DefBuckets,
		}),
		LastRunTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stockscribe_last_run_timestamp_seconds",
			Help: "Unix time the last run completed",
		}),
		ChartsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockscribe_charts_written_total",
			Help: "Candlestick chart files written",
		}),
	}

	prometheus.MustRegister(
		m.TickerOutcomes,
		m.RowsAppended,
		m.FetchDuration,
		m.RunDuration,
		m.LastRunTime,
		m.ChartsWritten,
	)

	return m
}
