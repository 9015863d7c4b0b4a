package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockRadar/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted provider exposing
// a simple bar/fundamentals JSON API. Used when a base URL is
// configured; otherwise the Yahoo fetcher is the default source.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of one bar.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *RESTFetcher) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("provider fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("provider decode: %w", err)
	}
	return nil
}

func (f *RESTFetcher) FetchBars(ctx context.Context, ticker, period, interval string) (*model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars?symbol=%s&range=%s&interval=%s",
		f.BaseURL, url.QueryEscape(ticker), url.QueryEscape(period), url.QueryEscape(interval))

	var raw []restBar
	if err := f.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("provider: no bars for %s", ticker)
	}

	bars := make([]model.OHLCV, len(raw))
	for i, rb := range raw {
		bars[i] = model.OHLCV{
			Time:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	return &model.PriceSeries{
		Ticker:    ticker,
		Period:    period,
		Interval:  interval,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

func (f *RESTFetcher) FetchFundamentals(ctx context.Context, ticker string) (model.Fundamentals, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fundamentals?symbol=%s", f.BaseURL, url.QueryEscape(ticker))

	var raw struct {
		PriceToBook    *float64 `json:"price_to_book"`
		ReturnOnEquity *float64 `json:"return_on_equity"`
	}
	if err := f.get(ctx, endpoint, &raw); err != nil {
		return model.Fundamentals{}, err
	}
	var fund model.Fundamentals
	if raw.PriceToBook != nil {
		fund.PriceToBook = model.Some(*raw.PriceToBook)
	}
	if raw.ReturnOnEquity != nil {
		fund.ReturnOnEquity = model.Some(*raw.ReturnOnEquity)
	}
	return fund, nil
}
