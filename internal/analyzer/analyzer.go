// Package analyzer produces the per-ticker analysis record consumed by
// the presentation layer: price, every indicator, the externally
// supplied scalars, and the composite verdict.
package analyzer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"StockRadar/internal/calculator"
	"StockRadar/internal/collector"
	"StockRadar/internal/metrics"
	"StockRadar/internal/model"
	"StockRadar/internal/strategy"
)

// Analyzer wires the fetch coordinator to the indicator and scoring
// engines. Analysis itself is pure and reentrant; concurrent calls on
// independent tickers are safe.
type Analyzer struct {
	Coordinator  *collector.Coordinator
	Sentiment    collector.SentimentSource
	IndicatorCfg calculator.Config
	ScoringCfg   strategy.Config
	Period       string
	Interval     string
	Metrics      *metrics.Metrics
}

// New creates an analyzer with a neutral sentiment source by default.
func New(coord *collector.Coordinator, indCfg calculator.Config, scoreCfg strategy.Config, period, interval string, m *metrics.Metrics) *Analyzer {
	return &Analyzer{
		Coordinator:  coord,
		Sentiment:    collector.NeutralSentiment{},
		IndicatorCfg: indCfg,
		ScoringCfg:   scoreCfg,
		Period:       period,
		Interval:     interval,
		Metrics:      m,
	}
}

// Analyze fetches one ticker (through the cache) and computes its full
// record. Missing fundamentals or sentiment degrade to neutral values;
// only a failed series fetch is an error.
func (a *Analyzer) Analyze(ctx context.Context, ticker string) (*model.Analysis, error) {
	series, err := a.Coordinator.Fetch(ctx, ticker, a.Period, a.Interval)
	if err != nil {
		return nil, err
	}
	return a.analyzeSeries(ctx, series), nil
}

// Snapshot recomputes just the indicator snapshot for one ticker.
func (a *Analyzer) Snapshot(ctx context.Context, ticker string) (*model.IndicatorSnapshot, error) {
	series, err := a.Coordinator.Fetch(ctx, ticker, a.Period, a.Interval)
	if err != nil {
		return nil, err
	}
	snap := calculator.BuildSnapshot(series, a.IndicatorCfg)
	return &snap, nil
}

func (a *Analyzer) analyzeSeries(ctx context.Context, series *model.PriceSeries) *model.Analysis {
	start := time.Now()
	snap := calculator.BuildSnapshot(series, a.IndicatorCfg)

	fund, err := a.Coordinator.Fundamentals(ctx, series.Ticker)
	if err != nil {
		log.Debug().Str("ticker", series.Ticker).Err(err).Msg("fundamentals unavailable")
		fund = model.Fundamentals{}
	}

	sentiment := 0.0
	if a.Sentiment != nil {
		if s, err := a.Sentiment.SentimentScore(ctx, series.Ticker); err == nil {
			sentiment = s
		} else {
			log.Debug().Str("ticker", series.Ticker).Err(err).Msg("sentiment unavailable")
		}
	}

	breakdown := strategy.Evaluate(&snap, fund, sentiment, a.ScoringCfg)
	a.Metrics.ObserveAnalysis(time.Since(start).Seconds())

	return &model.Analysis{
		Ticker:       series.Ticker,
		Price:        snap.Close,
		Snapshot:     snap,
		Fundamentals: fund,
		Sentiment:    sentiment,
		Breakdown:    breakdown,
	}
}

// AnalyzeBatch runs the full analysis over a watchlist. Parallel mode
// fans the fetches out over the coordinator's worker pool; either way a
// failing ticker is absent from the result, never fatal.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, tickers []string, parallel bool) map[string]*model.Analysis {
	var series map[string]*model.PriceSeries
	if parallel {
		series = a.Coordinator.FetchBatchParallel(ctx, tickers, a.Period, a.Interval)
	} else {
		series = a.Coordinator.FetchBatch(ctx, tickers, a.Period, a.Interval)
	}

	out := make(map[string]*model.Analysis, len(series))
	for t, s := range series {
		out[t] = a.analyzeSeries(ctx, s)
	}
	return out
}
