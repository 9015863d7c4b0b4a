package model

// Metric is an indicator value that may be unavailable when the series is
// too short for the indicator's window. Valid=false means "insufficient
// data", never a computation failure.
type Metric struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Some wraps a computed value.
func Some(v float64) Metric { return Metric{Value: v, Valid: true} }

// None is the unavailable metric.
func None() Metric { return Metric{} }

// Trend classifies price position relative to the Ichimoku cloud.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendBearish Trend = "BEARISH"
	TrendNeutral Trend = "NEUTRAL"
)

// VolatilityLevel buckets the ATR/price ratio.
type VolatilityLevel string

const (
	VolatilityLow     VolatilityLevel = "LOW"
	VolatilityMedium  VolatilityLevel = "MEDIUM"
	VolatilityHigh    VolatilityLevel = "HIGH"
	VolatilityUnknown VolatilityLevel = "UNKNOWN"
)

// Pattern is a candlestick pattern detected on the latest bar(s).
type Pattern string

const (
	PatternHammer           Pattern = "HAMMER"
	PatternDoji             Pattern = "DOJI"
	PatternBullishEngulfing Pattern = "BULLISH_ENGULFING"
	PatternBearishEngulfing Pattern = "BEARISH_ENGULFING"
	PatternNone             Pattern = "NONE"
)

// FibLevels holds the retracement levels between a range high and low,
// plus the 0.618 extension target.
type FibLevels struct {
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	L236      float64 `json:"l236"`
	L382      float64 `json:"l382"`
	L500      float64 `json:"l500"`
	L618      float64 `json:"l618"`
	L786      float64 `json:"l786"`
	Extension float64 `json:"extension"`
}

// PivotLevels holds classic pivot points derived from the prior period.
type PivotLevels struct {
	PP float64 `json:"pp"`
	R1 float64 `json:"r1"`
	R2 float64 `json:"r2"`
	S1 float64 `json:"s1"`
	S2 float64 `json:"s2"`
}

// PeriodReturns holds percentage returns over trailing windows
// (20/60/120/240 bars ~ 1/3/6/12 months of daily data).
type PeriodReturns struct {
	M1  Metric `json:"m1"`
	M3  Metric `json:"m3"`
	M6  Metric `json:"m6"`
	M12 Metric `json:"m12"`
}

// IndicatorSnapshot is the latest value of every indicator for one series,
// plus the trailing MACD histogram value needed for crossover detection.
// It is recomputed on every call and never persisted.
type IndicatorSnapshot struct {
	Ticker string  `json:"ticker"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`

	EMA13    Metric `json:"ema13"`
	RSI      Metric `json:"rsi"`
	StochRSI Metric `json:"stoch_rsi"`

	MACD         Metric `json:"macd"`
	MACDSignal   Metric `json:"macd_signal"`
	MACDHist     Metric `json:"macd_hist"`
	PrevMACDHist Metric `json:"prev_macd_hist"`

	BBUpper   Metric `json:"bb_upper"`
	BBMiddle  Metric `json:"bb_middle"`
	BBLower   Metric `json:"bb_lower"`
	Bandwidth Metric `json:"bandwidth"`
	Squeeze   bool   `json:"squeeze"`

	Tenkan     Metric `json:"tenkan"`
	Kijun      Metric `json:"kijun"`
	SenkouA    Metric `json:"senkou_a"`
	SenkouB    Metric `json:"senkou_b"`
	Chikou     Metric `json:"chikou"`
	CloudTrend Trend  `json:"cloud_trend"`

	ATR        Metric          `json:"atr"`
	Volatility VolatilityLevel `json:"volatility"`
	OBV        Metric          `json:"obv"`

	Fibonacci   *FibLevels    `json:"fibonacci,omitempty"`
	Pivots      *PivotLevels  `json:"pivots,omitempty"`
	Supports    []float64     `json:"supports,omitempty"`
	Resistances []float64     `json:"resistances,omitempty"`
	Patterns    []Pattern     `json:"patterns,omitempty"`
	Returns     PeriodReturns `json:"returns"`
}
