package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries holds an ordered run of bars for one ticker.
// Bars are sorted by strictly increasing timestamp and are treated as
// immutable once produced by a fetcher.
type PriceSeries struct {
	Ticker    string    `json:"ticker"`
	Period    string    `json:"period"`
	Interval  string    `json:"interval"`
	Bars      []OHLCV   `json:"bars"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar. The caller must ensure Len() >= 1.
func (s *PriceSeries) Last() OHLCV { return s.Bars[len(s.Bars)-1] }

// Closes returns the close column.
func (s *PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high column.
func (s *PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

// Lows returns the low column.
func (s *PriceSeries) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

// Volumes returns the volume column.
func (s *PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}

// ConvertCurrency returns a new series with every price field divided by rate.
// The receiver is left untouched so callers holding the original series keep
// the unconverted data. A rate <= 0 returns the receiver unchanged.
func (s *PriceSeries) ConvertCurrency(rate float64) *PriceSeries {
	if rate <= 0 {
		return s
	}
	out := &PriceSeries{
		Ticker:    s.Ticker,
		Period:    s.Period,
		Interval:  s.Interval,
		Bars:      make([]OHLCV, len(s.Bars)),
		FetchedAt: s.FetchedAt,
	}
	for i, b := range s.Bars {
		out.Bars[i] = OHLCV{
			Time:   b.Time,
			Open:   b.Open / rate,
			High:   b.High / rate,
			Low:    b.Low / rate,
			Close:  b.Close / rate,
			Volume: b.Volume,
		}
	}
	return out
}
