package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockScribe/internal/chart"
	"StockScribe/internal/config"
	"StockScribe/internal/logging"
	"StockScribe/internal/metrics"
	"StockScribe/internal/monitor"
	"StockScribe/internal/provider"
	"StockScribe/internal/recorder"
	"StockScribe/internal/scheduler"
	"StockScribe/internal/scraper"
	"StockScribe/internal/timefmt"
)

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", defaultConfigPath(), "path to YAML config")
	watch := flag.Bool("watch", false, "keep running and scrape on the configured cron schedule")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: scraper [flags] [TICKER]")
		fmt.Fprintln(os.Stderr, "  with no ticker argument, every configured ticker is scraped")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Init(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatalw("config validation failed", "error", err)
	}

	tickers := cfg.Tickers
	if flag.NArg() == 1 {
		tickers = []string{flag.Arg(0)}
	}

	var prov provider.Provider
	switch cfg.Fetch.Provider {
	case "rest":
		prov = provider.NewRESTProvider(cfg.Fetch.BaseURL, cfg.Fetch.APIKey, cfg.Proxy)
	case "mock":
		prov = &provider.MockProvider{Base: 100, Bars: 250}
	default:
		prov = provider.NewYahooProvider(cfg.Proxy)
	}

	rec, err := recorder.NewCSVRecorder(cfg.Output.Dir)
	if err != nil {
		logger.Fatalw("init recorder failed", "error", err)
	}
	defer rec.Close()

	clock := timefmt.New(cfg.Output.Timezone)

	logger.Infow("stockscribe starting",
		"config", *cfgPath,
		"provider", prov.Name(),
		"tickers", len(tickers),
		"watch", *watch)

	if *watch {
		// Repeated runs hammer a broken upstream; give it a recovery
		// window instead.
		prov = provider.NewBreakerProvider(prov)
	}

	s := scraper.New(prov, rec, clock, provider.Query{
		Range:    cfg.Fetch.Range,
		Interval: cfg.Fetch.Interval,
		PrePost:  cfg.IncludePrePost(),
	})
	if cfg.Output.Charts {
		s.Renderer = chart.NewCandlestick(cfg.Output.Dir, clock)
	}

	if !*watch {
		s.Run(tickers)
		return
	}

	if cfg.Watch.ResetOnStart {
		if err := rec.Reset(tickers); err != nil {
			logger.Warnw("reset of previous data failed", "error", err)
		}
	}
	s.Metrics = metrics.New()

	mon := monitor.NewServer(cfg.Monitor.Addr)
	mon.RegisterCheck("output_dir", func() bool {
		_, err := os.Stat(cfg.Output.Dir)
		return err == nil
	})
	mon.Start()

	sched := scheduler.New(s, tickers)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		logger.Fatalw("register schedule failed", "cron", cfg.Watch.Cron, "error", err)
	}
	sched.Start()

	if cfg.Watch.RunOnStart {
		go sched.RunNow()
	}

	logger.Infow("watching", "cron", cfg.Watch.Cron, "monitor", cfg.Monitor.Addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping")
	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mon.Stop(ctx)
	logger.Info("stopped")
}
