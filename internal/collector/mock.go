package collector

import (
	"context"
	"fmt"
	"time"

	"StockRadar/internal/model"
)

// MockFetcher returns controllable fixed data for development and tests.
type MockFetcher struct {
	Series       map[string]*model.PriceSeries
	Fundamentals map[string]model.Fundamentals
	FailTickers  map[string]bool
	BasePrice    float64
	BarCount     int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, ticker, period, interval string) (*model.PriceSeries, error) {
	if m.FailTickers[ticker] {
		return nil, fmt.Errorf("mock: fetch failed for %s", ticker)
	}
	if s, ok := m.Series[ticker]; ok {
		return s, nil
	}
	base := m.BasePrice
	if base == 0 {
		base = 100
	}
	count := m.BarCount
	if count == 0 {
		count = 300
	}
	return &model.PriceSeries{
		Ticker:    ticker,
		Period:    period,
		Interval:  interval,
		Bars:      GenerateBars(base, count),
		FetchedAt: time.Now(),
	}, nil
}

func (m *MockFetcher) FetchFundamentals(_ context.Context, ticker string) (model.Fundamentals, error) {
	if m.FailTickers[ticker] {
		return model.Fundamentals{}, fmt.Errorf("mock: fundamentals failed for %s", ticker)
	}
	if f, ok := m.Fundamentals[ticker]; ok {
		return f, nil
	}
	return model.Fundamentals{}, nil
}

// GenerateBars produces a gently drifting synthetic series around a base
// price, one daily bar per entry ending today.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
