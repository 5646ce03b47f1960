// Package scheduler drives watch mode: repeated scrape runs on a cron
// schedule.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"StockScribe/internal/scraper"
)

// Scheduler runs the scrape loop on a cron expression. Schedules use the
// six-field form with a leading seconds field; @every durations also work.
type Scheduler struct {
	Cron    *cron.Cron
	Scraper *scraper.Scraper
	Tickers []string
}

// cronLogger adapts the global zap logger to the cron.Logger interface.
type cronLogger struct{}

func (cronLogger) Info(msg string, kv ...interface{}) {
	zap.S().Infow("cron: "+msg, kv...)
}

func (cronLogger) Error(err error, msg string, kv ...interface{}) {
	zap.S().Errorw("cron: "+msg, append(kv, "error", err)...)
}

// New creates a scheduler whose job skips a tick while the previous run is
// still going, so slow fetches never pile up concurrent runs.
func New(s *scraper.Scraper, tickers []string) *Scheduler {
	logger := cronLogger{}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(logger), cron.Recover(logger)),
		),
		Scraper: s,
		Tickers: tickers,
	}
}

// Register adds the scrape job under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runOnce); err != nil {
		return fmt.Errorf("register scrape job: %w", err)
	}
	return nil
}

// RunNow triggers one scrape run immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	s.Scraper.Run(s.Tickers)
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	zap.S().Infow("scheduler started", "jobs", len(s.Cron.Entries()))
}

// Stop stops the scheduler and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	ctx := s.Cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}
