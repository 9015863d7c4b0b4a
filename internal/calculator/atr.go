package calculator

import (
	"errors"
	"math"

	"StockRadar/internal/model"
)

// ATR computes the average true range: the rolling mean of
// max(high−low, |high−prevClose|, |low−prevClose|) over the trailing
// period bars. Requires period+1 bars for the first previous close.
func ATR(highs, lows, closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	n := len(closes)
	if len(highs) != n || len(lows) != n {
		return 0, errors.New("column lengths differ")
	}
	if n < period+1 {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := n - period; i < n; i++ {
		tr := highs[i] - lows[i]
		if v := math.Abs(highs[i] - closes[i-1]); v > tr {
			tr = v
		}
		if v := math.Abs(lows[i] - closes[i-1]); v > tr {
			tr = v
		}
		sum += tr
	}
	return sum / float64(period), nil
}

// ClassifyVolatility buckets the ATR/price ratio into low, medium, or
// high volatility.
func ClassifyVolatility(atr, price float64) model.VolatilityLevel {
	if price <= 0 {
		return model.VolatilityUnknown
	}
	switch ratio := atr / price; {
	case ratio < 0.01:
		return model.VolatilityLow
	case ratio < 0.025:
		return model.VolatilityMedium
	default:
		return model.VolatilityHigh
	}
}
