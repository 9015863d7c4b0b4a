package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockRadar/internal/model"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "AAPL-1y-1d", Key("AAPL", "1y", "1d"))
}

func TestCacheRoundTrip(t *testing.T) {
	c := New()
	key := Key("AAPL", "1y", "1d")

	assert.Nil(t, c.Get(key))
	assert.False(t, c.IsValid(key, DefaultTTL))

	series := &model.PriceSeries{Ticker: "AAPL"}
	c.Set(key, series)

	require.NotNil(t, c.Get(key))
	assert.Same(t, series, c.Get(key))
	assert.True(t, c.IsValid(key, DefaultTTL))
	assert.Equal(t, 1, c.Len())
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New()
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	key := Key("AAPL", "1y", "1d")
	c.Set(key, &model.PriceSeries{Ticker: "AAPL"})
	assert.True(t, c.IsValid(key, 300*time.Second))

	now = now.Add(299 * time.Second)
	assert.True(t, c.IsValid(key, 300*time.Second))

	now = now.Add(2 * time.Second)
	assert.False(t, c.IsValid(key, 300*time.Second))

	// stale entries stay readable; freshness is the caller's contract
	assert.NotNil(t, c.Get(key))
}

func TestCacheClear(t *testing.T) {
	c := New()
	c.Set(Key("AAPL", "1y", "1d"), &model.PriceSeries{})
	c.Set(Key("MSFT", "1y", "1d"), &model.PriceSeries{})
	require.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Get(Key("AAPL", "1y", "1d")))
}
