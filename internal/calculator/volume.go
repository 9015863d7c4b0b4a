package calculator

import "errors"

// OBV computes on-balance volume: the cumulative sum of volume signed by
// the direction of the close-to-close change. Flat days leave the total
// unchanged.
func OBV(closes, volumes []float64) (float64, error) {
	if len(closes) == 0 {
		return 0, ErrInsufficientData
	}
	if len(closes) != len(volumes) {
		return 0, errors.New("column lengths differ")
	}
	obv := 0.0
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			obv += volumes[i]
		case closes[i] < closes[i-1]:
			obv -= volumes[i]
		}
	}
	return obv, nil
}
