package strategy

import (
	"StockRadar/internal/model"
)

// Each scoring rule is independent and order-insensitive: it inspects the
// snapshot (and external scalars) and awards a fixed point contribution.
// A rule whose inputs are unavailable contributes zero rather than
// failing the evaluation.

// scoreTrendEMA awards points when price trades above its trend EMA.
func scoreTrendEMA(snap *model.IndicatorSnapshot, cfg Config) model.Contribution {
	c := model.Contribution{Name: "price_above_ema"}
	if snap.EMA13.Valid && snap.Close > snap.EMA13.Value {
		c.Points = cfg.TrendEMAPoints
	}
	return c
}

// scoreRSIBand awards points when RSI sits inside the healthy band,
// neither oversold nor overheated.
func scoreRSIBand(snap *model.IndicatorSnapshot, cfg Config) model.Contribution {
	c := model.Contribution{Name: "rsi_band"}
	if snap.RSI.Valid && snap.RSI.Value >= cfg.RSIBandLow && snap.RSI.Value <= cfg.RSIBandHigh {
		c.Points = cfg.RSIBandPoints
	}
	return c
}

// scoreSqueeze awards points when the Bollinger bandwidth has contracted
// below the squeeze threshold.
func scoreSqueeze(snap *model.IndicatorSnapshot, cfg Config) model.Contribution {
	c := model.Contribution{Name: "bollinger_squeeze"}
	if snap.Bandwidth.Valid && snap.Squeeze {
		c.Points = cfg.SqueezePoints
	}
	return c
}

// scoreSentiment awards signed points when the external sentiment score
// is decisively positive or negative.
func scoreSentiment(sentiment float64, cfg Config) model.Contribution {
	c := model.Contribution{Name: "sentiment"}
	switch {
	case sentiment > cfg.SentimentThreshold:
		c.Points = cfg.SentimentPoints
	case sentiment < -cfg.SentimentThreshold:
		c.Points = -cfg.SentimentPoints
	}
	return c
}

// scoreValuation awards points when both fundamental scalars are
// available and healthy: return on equity above the floor and
// price-to-book below the ceiling.
func scoreValuation(fund model.Fundamentals, cfg Config) model.Contribution {
	c := model.Contribution{Name: "valuation"}
	if fund.ReturnOnEquity.Valid && fund.PriceToBook.Valid &&
		fund.ReturnOnEquity.Value >= cfg.ROEMin && fund.PriceToBook.Value > 0 &&
		fund.PriceToBook.Value <= cfg.PriceToBookMax {
		c.Points = cfg.ValuationPoints
	}
	return c
}

// scoreMACDCross awards signed points on a histogram zero crossing:
// a bullish cross confirmed by a positive histogram, or its mirror.
func scoreMACDCross(snap *model.IndicatorSnapshot, cfg Config) model.Contribution {
	c := model.Contribution{Name: "macd_cross"}
	if !snap.MACDHist.Valid || !snap.PrevMACDHist.Valid {
		return c
	}
	prev, cur := snap.PrevMACDHist.Value, snap.MACDHist.Value
	switch {
	case prev <= 0 && cur > 0:
		c.Points = cfg.MACDPoints
	case prev >= 0 && cur < 0:
		c.Points = -cfg.MACDPoints
	}
	return c
}
