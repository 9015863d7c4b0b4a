package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockRadar/internal/alert"
	"StockRadar/internal/analyzer"
	"StockRadar/internal/api"
	"StockRadar/internal/cache"
	"StockRadar/internal/collector"
	"StockRadar/internal/config"
	"StockRadar/internal/metrics"
	"StockRadar/internal/notifier"
	"StockRadar/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	scanOnce := flag.Bool("scan", false, "run one watchlist scan and exit")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Strs("watchlist", cfg.Watchlist).Msg("radar starting")

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	coord := collector.NewCoordinator(
		fetcher,
		cache.New(),
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		time.Duration(cfg.Fetch.DelayMS)*time.Millisecond,
		cfg.Fetch.Concurrency,
		m,
	)
	anlz := analyzer.New(coord, cfg.Indicators, cfg.Scoring, cfg.DataSource.Period, cfg.DataSource.Interval, m)

	var store alert.Store
	if cfg.Database.SQLitePath != "" {
		store, err = alert.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open alert store")
		}
	} else {
		store = alert.NewMemoryStore()
	}
	defer store.Close()

	var tg scheduler.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tg = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		log.Warn().Msg("telegram not configured, notifications disabled")
	}

	sched := scheduler.New(anlz, store, tg, cfg.Watchlist, cfg.Fetch.Parallel, m)

	if *scanOnce {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		sched.RunScan(ctx)
		return
	}

	if err := sched.Start(cfg.Schedule.ScanCron); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	srv := api.New(cfg.Server.Addr, anlz, store, reg, cfg.Watchlist, cfg.Fetch.Parallel)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	sched.Stop()
}
