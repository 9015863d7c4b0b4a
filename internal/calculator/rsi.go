package calculator

import "errors"

// RSISeries computes the relative strength index using simple rolling
// means of gains and losses over a trailing window of period deltas.
// The returned slice holds one value per bar starting at bar index
// period, i.e. out[k] is the RSI at closes[k+period].
func RSISeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(closes) < period+1 {
		return nil, ErrInsufficientData
	}

	n := len(closes)
	gains := make([]float64, n-1)
	losses := make([]float64, n-1)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i-1] = change
		} else {
			losses[i-1] = -change
		}
	}

	out := make([]float64, 0, n-period)
	var sumGain, sumLoss float64
	for i := 0; i < len(gains); i++ {
		sumGain += gains[i]
		sumLoss += losses[i]
		if i >= period {
			sumGain -= gains[i-period]
			sumLoss -= losses[i-period]
		}
		if i >= period-1 {
			avgGain := sumGain / float64(period)
			avgLoss := sumLoss / float64(period)
			rs := avgGain / (avgLoss + epsilon)
			out = append(out, 100.0-100.0/(1.0+rs))
		}
	}
	return out, nil
}

// RSI returns the latest RSI value.
func RSI(closes []float64, period int) (float64, error) {
	s, err := RSISeries(closes, period)
	if err != nil {
		return 0, err
	}
	return s[len(s)-1], nil
}

// StochRSI min-max normalizes the RSI over its own trailing window,
// yielding a value in [0,1]. Requires enough closes for the RSI series
// to cover a full stochastic window.
func StochRSI(closes []float64, rsiPeriod, stochPeriod int) (float64, error) {
	if stochPeriod <= 0 {
		return 0, errors.New("period must be positive")
	}
	rsis, err := RSISeries(closes, rsiPeriod)
	if err != nil {
		return 0, err
	}
	if len(rsis) < stochPeriod {
		return 0, ErrInsufficientData
	}
	window := rsis[len(rsis)-stochPeriod:]
	lo, hi := window[0], window[0]
	for _, v := range window {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	cur := rsis[len(rsis)-1]
	stoch := (cur - lo) / (hi - lo + epsilon)
	if stoch < 0 {
		stoch = 0
	}
	if stoch > 1 {
		stoch = 1
	}
	return stoch, nil
}
