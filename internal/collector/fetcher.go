// Package collector retrieves price series from an external data
// provider and coordinates batch fetches through the shared cache.
package collector

import (
	"context"

	"StockRadar/internal/model"
)

// Fetcher defines the external data-provider collaborator. Latency and
// rate-limit behavior are provider-controlled; implementations bound
// their own requests.
type Fetcher interface {
	FetchBars(ctx context.Context, ticker, period, interval string) (*model.PriceSeries, error)
	FetchFundamentals(ctx context.Context, ticker string) (model.Fundamentals, error)
	Name() string
}

// SentimentSource supplies an externally computed sentiment score in
// [-1,1] for a ticker. The engine only consumes the scalar; how it is
// produced is out of scope.
type SentimentSource interface {
	SentimentScore(ctx context.Context, ticker string) (float64, error)
}

// NeutralSentiment always reports 0. It is the default when no
// sentiment collaborator is configured.
type NeutralSentiment struct{}

func (NeutralSentiment) SentimentScore(context.Context, string) (float64, error) { return 0, nil }
