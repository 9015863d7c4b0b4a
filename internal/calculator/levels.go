package calculator

import (
	"errors"

	"StockRadar/internal/model"
)

// fibRatios in level order; levels step down from the range high.
var fibRatios = [...]float64{0.236, 0.382, 0.5, 0.618, 0.786}

// Fibonacci computes retracement levels between the given range high and
// low, plus the 0.618 extension target. The target extends beyond the
// high only once price has already retraced past the 50% level;
// otherwise the high itself is the target.
func Fibonacci(high, low, lastClose float64) (*model.FibLevels, error) {
	if high < low {
		return nil, errors.New("high must be >= low")
	}
	diff := high - low
	ext := high
	if lastClose < high-0.5*diff {
		ext = high + 0.618*diff
	}
	return &model.FibLevels{
		High:      high,
		Low:       low,
		L236:      high - diff*fibRatios[0],
		L382:      high - diff*fibRatios[1],
		L500:      high - diff*fibRatios[2],
		L618:      high - diff*fibRatios[3],
		L786:      high - diff*fibRatios[4],
		Extension: ext,
	}, nil
}

// FibonacciFromSeries derives the range from the series extremes.
func FibonacciFromSeries(highs, lows, closes []float64) (*model.FibLevels, error) {
	if len(highs) == 0 || len(lows) == 0 || len(closes) == 0 {
		return nil, ErrInsufficientData
	}
	hi := highs[0]
	for _, v := range highs {
		if v > hi {
			hi = v
		}
	}
	lo := lows[0]
	for _, v := range lows {
		if v < lo {
			lo = v
		}
	}
	return Fibonacci(hi, lo, closes[len(closes)-1])
}

// PivotPoints computes classic pivots from the prior period's bar.
func PivotPoints(prior model.OHLCV) *model.PivotLevels {
	pp := (prior.High + prior.Low + prior.Close) / 3
	return &model.PivotLevels{
		PP: pp,
		R1: 2*pp - prior.Low,
		S1: 2*pp - prior.High,
		R2: pp + (prior.High - prior.Low),
		S2: pp - (prior.High - prior.Low),
	}
}

// SupportResistance finds local extrema: a bar is a support (resistance)
// when its low (high) is the minimum (maximum) within a symmetric window
// of w bars on each side. At most the last 10 of each are returned, in
// chronological order.
func SupportResistance(highs, lows []float64, w int) (supports, resistances []float64, err error) {
	if w <= 0 {
		return nil, nil, errors.New("window must be positive")
	}
	n := len(highs)
	if len(lows) != n {
		return nil, nil, errors.New("column lengths differ")
	}
	if n < 2*w+1 {
		return nil, nil, ErrInsufficientData
	}
	for i := w; i < n-w; i++ {
		isSupport, isResistance := true, true
		for j := i - w; j <= i+w; j++ {
			if lows[j] < lows[i] {
				isSupport = false
			}
			if highs[j] > highs[i] {
				isResistance = false
			}
			if !isSupport && !isResistance {
				break
			}
		}
		if isSupport {
			supports = append(supports, lows[i])
		}
		if isResistance {
			resistances = append(resistances, highs[i])
		}
	}
	if len(supports) > 10 {
		supports = supports[len(supports)-10:]
	}
	if len(resistances) > 10 {
		resistances = resistances[len(resistances)-10:]
	}
	return supports, resistances, nil
}
