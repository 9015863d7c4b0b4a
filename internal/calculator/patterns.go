package calculator

import (
	"math"

	"StockRadar/internal/model"
)

// DetectPatterns evaluates single and two-bar candlestick patterns on
// the latest bar(s). Patterns are not mutually exclusive; all that match
// are returned. An empty result means no pattern fired.
func DetectPatterns(bars []model.OHLCV) []model.Pattern {
	if len(bars) == 0 {
		return nil
	}
	var out []model.Pattern
	cur := bars[len(bars)-1]
	body := math.Abs(cur.Open - cur.Close)
	rng := cur.High - cur.Low

	if rng > 3*body && body <= rng*0.25 && rng > 0 {
		out = append(out, model.PatternHammer)
	}
	if rng > 0 && body < rng*0.1 {
		out = append(out, model.PatternDoji)
	}

	if len(bars) >= 2 {
		prev := bars[len(bars)-2]
		// current body fully contains and reverses the prior body
		if cur.Close > cur.Open && prev.Open > prev.Close &&
			cur.Close > prev.Open && cur.Open < prev.Close {
			out = append(out, model.PatternBullishEngulfing)
		}
		if cur.Close < cur.Open && prev.Open < prev.Close &&
			cur.Close < prev.Open && cur.Open > prev.Close {
			out = append(out, model.PatternBearishEngulfing)
		}
	}
	return out
}
