package calculator

import "StockRadar/internal/model"

// BuildSnapshot computes the latest value of every indicator for one
// series. Indicators on insufficient history come back invalid; the
// snapshot itself is always produced as long as the series has at least
// one bar.
func BuildSnapshot(series *model.PriceSeries, cfg Config) model.IndicatorSnapshot {
	snap := model.IndicatorSnapshot{
		Ticker:     series.Ticker,
		CloudTrend: model.TrendNeutral,
		Volatility: model.VolatilityUnknown,
	}
	if series.Len() == 0 {
		return snap
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()
	volumes := series.Volumes()
	last := series.Last()
	snap.Close = last.Close
	snap.Volume = last.Volume

	if v, err := EMA(closes, cfg.TrendEMAPeriod); err == nil {
		snap.EMA13 = model.Some(v)
	}
	if v, err := RSI(closes, cfg.RSIPeriod); err == nil {
		snap.RSI = model.Some(v)
	}
	if v, err := StochRSI(closes, cfg.RSIPeriod, cfg.StochPeriod); err == nil {
		snap.StochRSI = model.Some(v)
	}

	if m, err := MACDSeries(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal); err == nil {
		n := len(m.Line)
		snap.MACD = model.Some(m.Line[n-1])
		snap.MACDSignal = model.Some(m.Signal[n-1])
		snap.MACDHist = model.Some(m.Hist[n-1])
		if n >= 2 {
			snap.PrevMACDHist = model.Some(m.Hist[n-2])
		}
	}

	if u, mid, l, bw, err := Bollinger(closes, cfg.BollingerPeriod, cfg.BollingerMult); err == nil {
		snap.BBUpper = model.Some(u)
		snap.BBMiddle = model.Some(mid)
		snap.BBLower = model.Some(l)
		snap.Bandwidth = model.Some(bw)
		snap.Squeeze = bw < cfg.SqueezeThreshold
	}

	ichi := Ichimoku(highs, lows, closes, cfg.TenkanPeriod, cfg.KijunPeriod, cfg.SenkouBPeriod)
	snap.Tenkan = ichi.Tenkan
	snap.Kijun = ichi.Kijun
	snap.SenkouA = ichi.SenkouA
	snap.SenkouB = ichi.SenkouB
	snap.Chikou = ichi.Chikou
	snap.CloudTrend = ichi.Trend

	if v, err := ATR(highs, lows, closes, cfg.ATRPeriod); err == nil {
		snap.ATR = model.Some(v)
		snap.Volatility = ClassifyVolatility(v, last.Close)
	}
	if v, err := OBV(closes, volumes); err == nil {
		snap.OBV = model.Some(v)
	}

	if fib, err := FibonacciFromSeries(highs, lows, closes); err == nil {
		snap.Fibonacci = fib
	}
	snap.Pivots = PivotPoints(last)
	if sup, res, err := SupportResistance(highs, lows, cfg.SRWindow); err == nil {
		snap.Supports = sup
		snap.Resistances = res
	}

	snap.Patterns = DetectPatterns(series.Bars)
	if len(snap.Patterns) == 0 {
		snap.Patterns = []model.Pattern{model.PatternNone}
	}
	snap.Returns = PeriodReturns(closes)
	return snap
}
