package collector

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"StockRadar/internal/cache"
	"StockRadar/internal/metrics"
	"StockRadar/internal/model"
)

// Coordinator orchestrates per-ticker retrieval through the shared
// cache. A failing ticker never aborts a batch; it is simply absent
// from the result map.
type Coordinator struct {
	fetcher     Fetcher
	cache       *cache.Cache
	ttl         time.Duration
	delay       time.Duration // inter-request pause in sequential mode
	concurrency int           // worker count in parallel mode
	metrics     *metrics.Metrics
}

// NewCoordinator creates a coordinator. ttl <= 0 falls back to the
// default cache TTL; concurrency < 1 is clamped to 1.
func NewCoordinator(fetcher Fetcher, c *cache.Cache, ttl, delay time.Duration, concurrency int, m *metrics.Metrics) *Coordinator {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Coordinator{
		fetcher:     fetcher,
		cache:       c,
		ttl:         ttl,
		delay:       delay,
		concurrency: concurrency,
		metrics:     m,
	}
}

// Fetch returns the series for one ticker, from cache when fresh,
// otherwise from the provider (populating the cache on success).
func (c *Coordinator) Fetch(ctx context.Context, ticker, period, interval string) (*model.PriceSeries, error) {
	key := cache.Key(ticker, period, interval)
	if c.cache.IsValid(key, c.ttl) {
		if s := c.cache.Get(key); s != nil {
			c.metrics.IncCacheHit()
			return s, nil
		}
	}
	c.metrics.IncCacheMiss()
	c.metrics.IncFetch()
	series, err := c.fetcher.FetchBars(ctx, ticker, period, interval)
	if err != nil {
		c.metrics.IncFetchError()
		return nil, err
	}
	c.cache.Set(key, series)
	return series, nil
}

// Fundamentals retrieves the valuation scalars for one ticker straight
// from the provider. Fundamentals are cheap and not cached.
func (c *Coordinator) Fundamentals(ctx context.Context, ticker string) (model.Fundamentals, error) {
	return c.fetcher.FetchFundamentals(ctx, ticker)
}

// FetchBatch retrieves a batch sequentially, pausing between provider
// calls to respect rate limits. Cache hits do not pause.
func (c *Coordinator) FetchBatch(ctx context.Context, tickers []string, period, interval string) map[string]*model.PriceSeries {
	out := make(map[string]*model.PriceSeries, len(tickers))
	for _, t := range tickers {
		key := cache.Key(t, period, interval)
		cached := c.cache.IsValid(key, c.ttl)

		series, err := c.Fetch(ctx, t, period, interval)
		if err != nil {
			log.Warn().Str("ticker", t).Err(err).Msg("batch fetch failed, skipping ticker")
		} else {
			out[t] = series
		}
		if !cached && c.delay > 0 {
			time.Sleep(c.delay)
		}
	}
	return out
}

// FetchBatchParallel retrieves a batch with a bounded worker pool, one
// result slot per ticker. Workers are joined before returning; there is
// no cancellation of in-flight provider calls beyond the per-call ctx.
func (c *Coordinator) FetchBatchParallel(ctx context.Context, tickers []string, period, interval string) map[string]*model.PriceSeries {
	type result struct {
		ticker string
		series *model.PriceSeries
	}

	jobs := make(chan string)
	results := make(chan result)

	workers := c.concurrency
	if workers > len(tickers) {
		workers = len(tickers)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for t := range jobs {
				series, err := c.Fetch(ctx, t, period, interval)
				if err != nil {
					log.Warn().Str("ticker", t).Err(err).Msg("parallel fetch failed, skipping ticker")
					continue
				}
				results <- result{ticker: t, series: series}
			}
		}()
	}

	go func() {
		for _, t := range tickers {
			jobs <- t
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make(map[string]*model.PriceSeries, len(tickers))
	for r := range results {
		out[r.ticker] = r.series
	}
	return out
}
