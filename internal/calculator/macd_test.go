package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACDHistIsLineMinusSignal(t *testing.T) {
	closes := alternating(100, 0.6, 0.4, 80)
	m, err := MACDSeries(closes, 12, 26, 9)
	require.NoError(t, err)
	require.Len(t, m.Line, len(closes))
	require.Len(t, m.Signal, len(closes))
	require.Len(t, m.Hist, len(closes))
	for i := range closes {
		assert.InDelta(t, m.Line[i]-m.Signal[i], m.Hist[i], 1e-12)
	}
}

func TestMACDUptrendPositive(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	m, err := MACDSeries(closes, 12, 26, 9)
	require.NoError(t, err)
	// fast EMA tracks a rising series closer than the slow EMA
	assert.Greater(t, m.Line[len(m.Line)-1], 0.0)
}

func TestMACDErrors(t *testing.T) {
	closes := alternating(100, 0.6, 0.4, 80)

	_, err := MACDSeries(closes, 26, 12, 9)
	assert.Error(t, err)

	_, err = MACDSeries(closes[:20], 12, 26, 9)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = MACDSeries(closes, 0, 26, 9)
	assert.Error(t, err)
}
