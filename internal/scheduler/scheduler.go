// Package scheduler drives the periodic watchlist scan: fetch, analyze,
// evaluate alerts, notify.
package scheduler

import (
	"context"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"StockRadar/internal/alert"
	"StockRadar/internal/analyzer"
	"StockRadar/internal/metrics"
	"StockRadar/internal/model"
	"StockRadar/internal/notifier"
)

// Notifier is the outbound message sink. Nil disables notifications.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs cron-driven scans over the watchlist.
type Scheduler struct {
	cron      *cron.Cron
	analyzer  *analyzer.Analyzer
	store     alert.Store
	notifier  Notifier
	watchlist []string
	parallel  bool
	metrics   *metrics.Metrics
}

// New creates a scheduler with second-resolution cron specs.
func New(a *analyzer.Analyzer, store alert.Store, n Notifier, watchlist []string, parallel bool, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		analyzer:  a,
		store:     store,
		notifier:  n,
		watchlist: watchlist,
		parallel:  parallel,
		metrics:   m,
	}
}

// Start registers the scan job and starts the cron loop.
func (s *Scheduler) Start(scanSpec string) error {
	if _, err := s.cron.AddFunc(scanSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.RunScan(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Str("scan", scanSpec).Msg("scheduler started")
	return nil
}

// Stop stops the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("scheduler stopped")
}

// RunScan performs one full watchlist pass: analysis, alert evaluation,
// and notification. Failing tickers are skipped, never fatal.
func (s *Scheduler) RunScan(ctx context.Context) {
	start := time.Now()
	analyses := s.analyzer.AnalyzeBatch(ctx, s.watchlist, s.parallel)
	log.Info().
		Int("requested", len(s.watchlist)).
		Int("analyzed", len(analyses)).
		Dur("took", time.Since(start)).
		Msg("watchlist scan complete")

	fired := s.checkAlerts(analyses)

	if s.notifier == nil {
		return
	}
	ranked := make([]*model.Analysis, 0, len(analyses))
	for _, a := range analyses {
		ranked = append(ranked, a)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Breakdown.Total != ranked[j].Breakdown.Total {
			return ranked[i].Breakdown.Total > ranked[j].Breakdown.Total
		}
		return ranked[i].Ticker < ranked[j].Ticker
	})

	msg := notifier.FormatWatchlist(ranked)
	if alertMsg := notifier.FormatTriggeredAlerts(fired); alertMsg != "" {
		msg += "\n" + alertMsg
	}
	if err := s.notifier.SendWithRetry(ctx, msg, 3); err != nil {
		log.Error().Err(err).Msg("scan notification failed")
	}
}

func (s *Scheduler) checkAlerts(analyses map[string]*model.Analysis) []model.TriggeredAlert {
	if s.store == nil {
		return nil
	}
	alerts, err := s.store.List()
	if err != nil {
		log.Error().Err(err).Msg("list alerts failed")
		return nil
	}
	if len(alerts) == 0 {
		return nil
	}
	snapshots := make(map[string]*model.IndicatorSnapshot, len(analyses))
	for t, a := range analyses {
		snap := a.Snapshot
		snapshots[t] = &snap
	}
	fired := alert.CheckAll(alerts, snapshots, time.Now())
	if len(fired) > 0 {
		s.metrics.AddAlertsFired(len(fired))
		for _, f := range fired {
			log.Info().Str("ticker", f.Alert.Ticker).Str("type", string(f.Alert.Type)).Msg(f.Message)
		}
	}
	return fired
}
