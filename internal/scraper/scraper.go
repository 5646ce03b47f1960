// Package scraper wires fetch, normalize, compute, and persist into the
// per-ticker pipeline and the multi-ticker run loop.
package scraper

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"StockScribe/internal/calculator"
	"StockScribe/internal/metrics"
	"StockScribe/internal/model"
	"StockScribe/internal/normalize"
	"StockScribe/internal/provider"
	"StockScribe/internal/recorder"
	"StockScribe/internal/summary"
	"StockScribe/internal/timefmt"
)

// Indicator windows, in bars.
const (
	rsiWindow = 14
	smaShort  = 10
	smaMedium = 50
	smaLong   = 200
)

// Outcome classifies how processing one ticker ended.
type Outcome string

const (
	OutcomeSaved      Outcome = "saved"
	OutcomeNoData     Outcome = "no_data"
	OutcomeFetchError Outcome = "fetch_error"
	OutcomeWriteError Outcome = "write_error"
)

// Renderer draws a chart for a ticker's bars.
type Renderer interface {
	Render(ticker string, f *model.Frame) error
}

// Scraper runs the per-ticker pipeline: fetch bars, normalize, compute
// indicators, persist one summary row. Renderer and Metrics are optional.
type Scraper struct {
	Provider provider.Provider
	Recorder recorder.Recorder
	Renderer Renderer
	Clock    *timefmt.Formatter
	Metrics  *metrics.Metrics
	Query    provider.Query
}

func New(p provider.Provider, rec recorder.Recorder, clock *timefmt.Formatter, q provider.Query) *Scraper {
	return &Scraper{Provider: p, Recorder: rec, Clock: clock, Query: q}
}

// RunReport tallies one multi-ticker run.
type RunReport struct {
	RunID    string
	Started  time.Time
	Duration time.Duration
	Outcomes map[Outcome]int
	ByTicker map[string]Outcome
}

// Run processes every ticker in order. One ticker's failure never stops
// the rest; each outcome is tallied and logged.
func (s *Scraper) Run(tickers []string) RunReport {
	rep := RunReport{
		RunID:    uuid.NewString(),
		Started:  time.Now(),
		Outcomes: make(map[Outcome]int),
		ByTicker: make(map[string]Outcome),
	}
	log := zap.S().With("run_id", rep.RunID)
	log.Infow("run started", "tickers", len(tickers), "provider", s.Provider.Name())

	for _, t := range tickers {
		out := s.ProcessTicker(t)
		rep.Outcomes[out]++
		rep.ByTicker[t] = out
	}
	rep.Duration = time.Since(rep.Started)

	if s.Metrics != nil {
		s.Metrics.RunDuration.Observe(rep.Duration.Seconds())
		s.Metrics.LastRunTime.SetToCurrentTime()
	}
	log.Infow("run finished",
		"duration", rep.Duration.Round(time.Millisecond).String(),
		"saved", rep.Outcomes[OutcomeSaved],
		"no_data", rep.Outcomes[OutcomeNoData],
		"fetch_errors", rep.Outcomes[OutcomeFetchError],
		"write_errors", rep.Outcomes[OutcomeWriteError])
	return rep
}

// ProcessTicker runs the pipeline for one ticker and reports the outcome.
func (s *Scraper) ProcessTicker(ticker string) Outcome {
	out := s.process(ticker)
	if s.Metrics != nil {
		s.Metrics.TickerOutcomes.WithLabelValues(ticker, string(out)).Inc()
		if out == OutcomeSaved {
			s.Metrics.RowsAppended.WithLabelValues(ticker).Inc()
		}
	}
	return out
}

func (s *Scraper) process(ticker string) Outcome {
	log := zap.S().With("ticker", ticker)

	start := time.Now()
	raw, err := s.Provider.Fetch(ticker, s.Query)
	if s.Metrics != nil {
		s.Metrics.FetchDuration.WithLabelValues(s.Provider.Name()).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		log.Errorw("fetch failed", "provider", s.Provider.Name(), "error", err)
		return OutcomeFetchError
	}

	f := normalize.Normalize(raw)
	if f.Empty() {
		log.Warnw("no data returned", "range", s.Query.Range, "interval", s.Query.Interval)
		return OutcomeNoData
	}

	rsi := calculator.CalculateRSI(f, rsiWindow)
	sma10 := calculator.CalculateSMA(f, smaShort)
	sma50 := calculator.CalculateSMA(f, smaMedium)
	sma200 := calculator.CalculateSMA(f, smaLong)

	rec := summary.Build(ticker, f, s.Clock, rsi, sma10, sma50, sma200)
	if err := s.Recorder.Append(ticker, rec); err != nil {
		log.Errorw("append failed", "error", err)
		return OutcomeWriteError
	}
	log.Infow("saved", "timestamp", rec.Timestamp, "close", rec.Close, "bars", f.Len())

	// Chart trouble never demotes a saved row.
	if s.Renderer != nil {
		if err := s.Renderer.Render(ticker, f); err != nil {
			log.Warnw("chart render failed", "error", err)
		} else if s.Metrics != nil {
			s.Metrics.ChartsWritten.Inc()
		}
	}
	return OutcomeSaved
}
