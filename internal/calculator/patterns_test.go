package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockRadar/internal/model"
)

func TestDetectDoji(t *testing.T) {
	bars := []model.OHLCV{{Open: 10, High: 10.5, Low: 9.5, Close: 10.01}}
	got := DetectPatterns(bars)
	assert.Contains(t, got, model.PatternDoji)
}

func TestDetectHammer(t *testing.T) {
	bars := []model.OHLCV{{Open: 10, High: 10.25, Low: 9.3, Close: 10.2}}
	got := DetectPatterns(bars)
	assert.Contains(t, got, model.PatternHammer)
	assert.NotContains(t, got, model.PatternDoji)
}

func TestDetectBullishEngulfing(t *testing.T) {
	bars := []model.OHLCV{
		{Open: 10.5, High: 10.6, Low: 9.9, Close: 10.0},
		{Open: 9.9, High: 10.7, Low: 9.8, Close: 10.6},
	}
	got := DetectPatterns(bars)
	assert.Contains(t, got, model.PatternBullishEngulfing)
}

func TestDetectBearishEngulfing(t *testing.T) {
	bars := []model.OHLCV{
		{Open: 10.0, High: 10.6, Low: 9.9, Close: 10.5},
		{Open: 10.6, High: 10.7, Low: 9.8, Close: 9.9},
	}
	got := DetectPatterns(bars)
	assert.Contains(t, got, model.PatternBearishEngulfing)
}

func TestDetectNoPattern(t *testing.T) {
	bars := []model.OHLCV{{Open: 10, High: 11.2, Low: 9.9, Close: 11}}
	assert.Empty(t, DetectPatterns(bars))
}
