package calculator

import (
	"StockRadar/internal/model"
)

// IchimokuLines holds the latest value of each Ichimoku line. Senkou
// spans are the cloud values in effect at the latest bar, i.e. the
// midpoints computed one kijun period back and shifted forward; Chikou
// is the close shifted back by the same displacement. Lines whose
// windows reach past the start of the series are reported invalid.
type IchimokuLines struct {
	Tenkan  model.Metric
	Kijun   model.Metric
	SenkouA model.Metric
	SenkouB model.Metric
	Chikou  model.Metric
	Trend   model.Trend
}

// midpoint returns (max(high) + min(low)) / 2 over the window of w bars
// ending at index end inclusive.
func midpoint(highs, lows []float64, end, w int) (float64, bool) {
	start := end - w + 1
	if start < 0 || end >= len(highs) {
		return 0, false
	}
	hi := highs[start]
	lo := lows[start]
	for i := start + 1; i <= end; i++ {
		if highs[i] > hi {
			hi = highs[i]
		}
		if lows[i] < lo {
			lo = lows[i]
		}
	}
	return (hi + lo) / 2, true
}

// Ichimoku computes the five lines for the latest bar and classifies the
// price position against the cloud: above both spans is bullish, below
// both is bearish, inside (or with an undefined cloud) is neutral.
func Ichimoku(highs, lows, closes []float64, tenkanP, kijunP, senkouBP int) IchimokuLines {
	out := IchimokuLines{Trend: model.TrendNeutral}
	n := len(closes)
	if n == 0 || len(highs) != n || len(lows) != n {
		return out
	}
	last := n - 1
	shift := kijunP // forward displacement of the cloud, backward shift of Chikou

	if v, ok := midpoint(highs, lows, last, tenkanP); ok {
		out.Tenkan = model.Some(v)
	}
	if v, ok := midpoint(highs, lows, last, kijunP); ok {
		out.Kijun = model.Some(v)
	}
	if last-shift >= 0 {
		out.Chikou = model.Some(closes[last-shift])
	}

	// The cloud at the latest bar was projected from shift bars ago.
	src := last - shift
	if src >= 0 {
		ta, okA := midpoint(highs, lows, src, tenkanP)
		kj, okB := midpoint(highs, lows, src, kijunP)
		if okA && okB {
			out.SenkouA = model.Some((ta + kj) / 2)
		}
		if v, ok := midpoint(highs, lows, src, senkouBP); ok {
			out.SenkouB = model.Some(v)
		}
	}

	if out.SenkouA.Valid && out.SenkouB.Valid {
		close := closes[last]
		hi := out.SenkouA.Value
		lo := out.SenkouB.Value
		if lo > hi {
			hi, lo = lo, hi
		}
		switch {
		case close > hi:
			out.Trend = model.TrendBullish
		case close < lo:
			out.Trend = model.TrendBearish
		}
	}
	return out
}
