package calculator

import "errors"

// MACDResult holds the three MACD series, one value per input bar.
type MACDResult struct {
	Line   []float64
	Signal []float64
	Hist   []float64
}

// MACDSeries computes MACD line (fast EMA − slow EMA), signal line (EMA
// of the MACD line), and histogram (line − signal) for every bar. EMAs
// are seeded by the series itself, so values exist from bar 0, but the
// series must cover at least slow+signal bars for the tail to be
// meaningful.
func MACDSeries(closes []float64, fast, slow, signal int) (MACDResult, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return MACDResult{}, errors.New("spans must be positive")
	}
	if fast >= slow {
		return MACDResult{}, errors.New("fast span must be shorter than slow span")
	}
	if len(closes) < slow+signal {
		return MACDResult{}, ErrInsufficientData
	}

	emaFast := EMASeries(closes, fast)
	emaSlow := EMASeries(closes, slow)
	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = emaFast[i] - emaSlow[i]
	}
	sig := EMASeries(line, signal)
	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - sig[i]
	}
	return MACDResult{Line: line, Signal: sig, Hist: hist}, nil
}
