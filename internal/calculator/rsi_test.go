package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alternating builds a series stepping +up on odd bars and -down on even
// bars, starting from base.
func alternating(base, up, down float64, n int) []float64 {
	out := make([]float64, n)
	out[0] = base
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			out[i] = out[i-1] + up
		} else {
			out[i] = out[i-1] - down
		}
	}
	return out
}

func TestRSIBounds(t *testing.T) {
	closes := alternating(100, 0.6, 0.4, 120)
	v, err := RSI(closes, 14)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 100.0)
	// 7 gains of 0.6 vs 7 losses of 0.4 in every window: RS = 1.5
	assert.InDelta(t, 60.0, v, 0.01)
}

func TestRSIMonotoneUp(t *testing.T) {
	closes := make([]float64, 50)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	v, err := RSI(closes, 14)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v, 0.01)
}

func TestRSIScaleInvariance(t *testing.T) {
	closes := alternating(100, 0.6, 0.4, 120)
	scaled := make([]float64, len(closes))
	for i, v := range closes {
		scaled[i] = v * 1000
	}
	a, err := RSI(closes, 14)
	require.NoError(t, err)
	b, err := RSI(scaled, 14)
	require.NoError(t, err)
	assert.InDelta(t, a, b, 0.01)
}

func TestRSIInsufficientData(t *testing.T) {
	closes := []float64{1, 2, 3}
	_, err := RSI(closes, 14)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRSISeriesLength(t *testing.T) {
	closes := alternating(100, 0.6, 0.4, 30)
	s, err := RSISeries(closes, 14)
	require.NoError(t, err)
	// one value per bar starting at bar index period
	assert.Len(t, s, len(closes)-14)
}

func TestStochRSIRange(t *testing.T) {
	closes := alternating(100, 0.6, 0.4, 120)
	v, err := StochRSI(closes, 14, 14)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestStochRSIInsufficientData(t *testing.T) {
	closes := alternating(100, 0.6, 0.4, 20)
	_, err := StochRSI(closes, 14, 14)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
