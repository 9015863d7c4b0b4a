package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockRadar/internal/model"
)

func TestATRKnownValue(t *testing.T) {
	highs := []float64{10.4, 10.9, 10.6}
	lows := []float64{9.8, 10.2, 10.0}
	closes := []float64{10.0, 10.5, 10.2}

	// TR1 = max(0.7, |10.9-10.0|, |10.2-10.0|) = 0.9
	// TR2 = max(0.6, |10.6-10.5|, |10.0-10.5|) = 0.6
	v, err := ATR(highs, lows, closes, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, v, 1e-9)
}

func TestATRInsufficientData(t *testing.T) {
	_, err := ATR([]float64{1, 2}, []float64{1, 2}, []float64{1, 2}, 14)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestClassifyVolatility(t *testing.T) {
	assert.Equal(t, model.VolatilityLow, ClassifyVolatility(0.5, 100))
	assert.Equal(t, model.VolatilityMedium, ClassifyVolatility(2, 100))
	assert.Equal(t, model.VolatilityHigh, ClassifyVolatility(5, 100))
	assert.Equal(t, model.VolatilityUnknown, ClassifyVolatility(1, 0))
}
