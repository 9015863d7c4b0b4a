// Package calculator implements pure, stateless indicator math over price
// columns. Every function is deterministic for a given input series and
// reports ErrInsufficientData instead of fabricating values when the
// series is shorter than the indicator's window.
package calculator

import "errors"

// ErrInsufficientData is returned when a series has fewer bars than an
// indicator's minimum window.
var ErrInsufficientData = errors.New("insufficient data")

// epsilon guards ratio denominators against zero division.
const epsilon = 1e-6

// Config holds every rolling window, span, and classification threshold
// used by the indicator functions. Values are validated by the config
// package at load time.
type Config struct {
	RSIPeriod        int     `yaml:"rsi_period"`
	StochPeriod      int     `yaml:"stoch_period"`
	MACDFast         int     `yaml:"macd_fast"`
	MACDSlow         int     `yaml:"macd_slow"`
	MACDSignal       int     `yaml:"macd_signal"`
	BollingerPeriod  int     `yaml:"bollinger_period"`
	BollingerMult    float64 `yaml:"bollinger_mult"`
	SqueezeThreshold float64 `yaml:"squeeze_threshold"`
	TenkanPeriod     int     `yaml:"tenkan_period"`
	KijunPeriod      int     `yaml:"kijun_period"`
	SenkouBPeriod    int     `yaml:"senkou_b_period"`
	ATRPeriod        int     `yaml:"atr_period"`
	TrendEMAPeriod   int     `yaml:"trend_ema_period"`
	SRWindow         int     `yaml:"sr_window"`
}

// DefaultConfig returns the canonical parameter set.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:        14,
		StochPeriod:      14,
		MACDFast:         12,
		MACDSlow:         26,
		MACDSignal:       9,
		BollingerPeriod:  20,
		BollingerMult:    2,
		SqueezeThreshold: 0.12,
		TenkanPeriod:     9,
		KijunPeriod:      26,
		SenkouBPeriod:    52,
		ATRPeriod:        14,
		TrendEMAPeriod:   13,
		SRWindow:         5,
	}
}
