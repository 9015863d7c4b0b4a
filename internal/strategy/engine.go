// Package strategy fuses indicator outputs with externally supplied
// fundamentals and sentiment into a bounded composite score and a
// categorical decision label.
package strategy

import "StockRadar/internal/model"

// Config holds the scoring weights and decision thresholds. The observed
// source variants disagree on exact weights, so everything is tunable;
// defaults are the canonical policy.
type Config struct {
	TrendEMAPoints     int     `yaml:"trend_ema_points"`
	RSIBandPoints      int     `yaml:"rsi_band_points"`
	RSIBandLow         float64 `yaml:"rsi_band_low"`
	RSIBandHigh        float64 `yaml:"rsi_band_high"`
	SqueezePoints      int     `yaml:"squeeze_points"`
	SentimentPoints    int     `yaml:"sentiment_points"`
	SentimentThreshold float64 `yaml:"sentiment_threshold"`
	MACDPoints         int     `yaml:"macd_points"`
	ValuationPoints    int     `yaml:"valuation_points"`
	ROEMin             float64 `yaml:"roe_min"`
	PriceToBookMax     float64 `yaml:"price_to_book_max"`

	StrongBuyMin int `yaml:"strong_buy_min"`
	HoldMin      int `yaml:"hold_min"`
	WaitMin      int `yaml:"wait_min"`
}

// DefaultConfig returns the canonical scoring policy.
func DefaultConfig() Config {
	return Config{
		TrendEMAPoints:     50,
		RSIBandPoints:      30,
		RSIBandLow:         40,
		RSIBandHigh:        70,
		SqueezePoints:      20,
		SentimentPoints:    20,
		SentimentThreshold: 0.2,
		MACDPoints:         20,
		ValuationPoints:    10,
		ROEMin:             10,
		PriceToBookMax:     3,
		StrongBuyMin:       80,
		HoldMin:            50,
		WaitMin:            30,
	}
}

// mapDecision maps a clamped score to its label, highest threshold first.
func mapDecision(score int, cfg Config) model.Decision {
	switch {
	case score >= cfg.StrongBuyMin:
		return model.DecisionStrongBuy
	case score >= cfg.HoldMin:
		return model.DecisionHold
	case score >= cfg.WaitMin:
		return model.DecisionWait
	default:
		return model.DecisionAvoid
	}
}

// Evaluate computes the composite breakdown for one snapshot plus the
// externally supplied scalars. Contributions are additive and
// order-independent; any rule with unavailable inputs contributes zero.
// The total is clamped into [0,100].
func Evaluate(snap *model.IndicatorSnapshot, fund model.Fundamentals, sentiment float64, cfg Config) model.ScoreBreakdown {
	contributions := []model.Contribution{
		scoreTrendEMA(snap, cfg),
		scoreRSIBand(snap, cfg),
		scoreSqueeze(snap, cfg),
		scoreSentiment(sentiment, cfg),
		scoreMACDCross(snap, cfg),
		scoreValuation(fund, cfg),
	}

	total := 0
	for _, c := range contributions {
		total += c.Points
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return model.ScoreBreakdown{
		Contributions: contributions,
		Total:         total,
		Decision:      mapDecision(total, cfg),
	}
}
