package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	v, err := SMA([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, v, 1e-12)

	_, err = SMA([]float64{1}, 2)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestEMASeriesSeed(t *testing.T) {
	values := []float64{10, 11, 12}
	s := EMASeries(values, 3)
	require.Len(t, s, 3)
	assert.InDelta(t, 10, s[0], 1e-12)
	// alpha = 0.5: 0.5*11 + 0.5*10 = 10.5, then 0.5*12 + 0.5*10.5 = 11.25
	assert.InDelta(t, 10.5, s[1], 1e-12)
	assert.InDelta(t, 11.25, s[2], 1e-12)
}

func TestEMAConstantSeries(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 42
	}
	v, err := EMA(values, 13)
	require.NoError(t, err)
	assert.InDelta(t, 42, v, 1e-12)
}

func TestEMAInsufficientData(t *testing.T) {
	_, err := EMA([]float64{1, 2, 3}, 13)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
