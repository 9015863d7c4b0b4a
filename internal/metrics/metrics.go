// Package metrics registers the Prometheus instruments for the engine.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and
// turns every record call into a no-op, so instrumentation stays
// optional for tests and library use.
type Metrics struct {
	FetchesTotal     prometheus.Counter
	FetchErrorsTotal prometheus.Counter
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	AnalysisDur      prometheus.Histogram
	AlertsFired      prometheus.Counter
}

// New registers and returns all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radar_fetches_total",
			Help: "Total provider fetches attempted",
		}),
		FetchErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radar_fetch_errors_total",
			Help: "Provider fetches that failed",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radar_cache_hits_total",
			Help: "Batch requests served from the series cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radar_cache_misses_total",
			Help: "Batch requests that went to the provider",
		}),
		AnalysisDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "radar_analysis_duration_seconds",
			Help:    "Wall time of one full ticker analysis",
			Buckets: prometheus.DefBuckets,
		}),
		AlertsFired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radar_alerts_fired_total",
			Help: "Alert conditions that fired on evaluation",
		}),
	}
	reg.MustRegister(m.FetchesTotal, m.FetchErrorsTotal, m.CacheHits, m.CacheMisses, m.AnalysisDur, m.AlertsFired)
	return m
}

func (m *Metrics) IncFetch() {
	if m != nil {
		m.FetchesTotal.Inc()
	}
}

func (m *Metrics) IncFetchError() {
	if m != nil {
		m.FetchErrorsTotal.Inc()
	}
}

func (m *Metrics) IncCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

func (m *Metrics) IncCacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

func (m *Metrics) ObserveAnalysis(seconds float64) {
	if m != nil {
		m.AnalysisDur.Observe(seconds)
	}
}

func (m *Metrics) AddAlertsFired(n int) {
	if m != nil {
		m.AlertsFired.Add(float64(n))
	}
}
