package calculator

import (
	"errors"
	"math"
)

// BollingerBands computes upper, middle, and lower bands for every bar
// with a fully populated window. The returned slices have length
// len(closes)-period+1; out[k] corresponds to closes[k+period-1].
// Standard deviation is the sample deviation (n−1 denominator).
func BollingerBands(closes []float64, period int, mult float64) (upper, middle, lower []float64, err error) {
	if period < 2 {
		return nil, nil, nil, errors.New("period must be at least 2")
	}
	if mult <= 0 {
		return nil, nil, nil, errors.New("multiplier must be positive")
	}
	if len(closes) < period {
		return nil, nil, nil, ErrInsufficientData
	}

	n := len(closes) - period + 1
	upper = make([]float64, n)
	middle = make([]float64, n)
	lower = make([]float64, n)
	for k := 0; k < n; k++ {
		window := closes[k : k+period]
		sum := 0.0
		for _, v := range window {
			sum += v
		}
		mean := sum / float64(period)
		var sq float64
		for _, v := range window {
			d := v - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(period-1))
		middle[k] = mean
		upper[k] = mean + mult*std
		lower[k] = mean - mult*std
	}
	return upper, middle, lower, nil
}

// Bollinger returns the latest band values and the relative bandwidth
// (upper−lower)/middle. Squeeze classification against the configured
// threshold is left to the caller.
func Bollinger(closes []float64, period int, mult float64) (upper, middle, lower, bandwidth float64, err error) {
	u, m, l, err := BollingerBands(closes, period, mult)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	i := len(m) - 1
	upper, middle, lower = u[i], m[i], l[i]
	bandwidth = (upper - lower) / (middle + epsilon)
	return upper, middle, lower, bandwidth, nil
}
