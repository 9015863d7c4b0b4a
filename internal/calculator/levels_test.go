package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockRadar/internal/model"
)

func TestFibonacciLevels(t *testing.T) {
	fib, err := Fibonacci(200, 100, 180)
	require.NoError(t, err)

	assert.InDelta(t, 176.4, fib.L236, 1e-9)
	assert.InDelta(t, 161.8, fib.L382, 1e-9)
	assert.InDelta(t, 150.0, fib.L500, 1e-9)
	assert.InDelta(t, 138.2, fib.L618, 1e-9)
	assert.InDelta(t, 121.4, fib.L786, 1e-9)

	// levels step down monotonically inside the range
	assert.True(t, fib.High >= fib.L236 && fib.L236 >= fib.L382 &&
		fib.L382 >= fib.L500 && fib.L500 >= fib.L618 &&
		fib.L618 >= fib.L786 && fib.L786 >= fib.Low)

	// shallow retracement: target stays at the range high
	assert.InDelta(t, 200, fib.Extension, 1e-9)
}

func TestFibonacciExtensionAfterDeepRetrace(t *testing.T) {
	fib, err := Fibonacci(200, 100, 140) // below the 50% level
	require.NoError(t, err)
	assert.InDelta(t, 261.8, fib.Extension, 1e-9)
}

func TestFibonacciInvalidRange(t *testing.T) {
	_, err := Fibonacci(100, 200, 150)
	assert.Error(t, err)
}

func TestPivotPoints(t *testing.T) {
	p := PivotPoints(model.OHLCV{High: 110, Low: 90, Close: 100})
	assert.InDelta(t, 100, p.PP, 1e-9)
	assert.InDelta(t, 110, p.R1, 1e-9)
	assert.InDelta(t, 90, p.S1, 1e-9)
	assert.InDelta(t, 120, p.R2, 1e-9)
	assert.InDelta(t, 80, p.S2, 1e-9)
	assert.True(t, p.R2 >= p.R1 && p.R1 >= p.PP && p.PP >= p.S1 && p.S1 >= p.S2)
}

func TestSupportResistance(t *testing.T) {
	lows := []float64{5, 4, 3, 2, 3, 4, 5, 4, 3, 4, 5}
	highs := []float64{7, 6, 5, 4, 5, 6, 7, 6, 5, 6, 7}

	supports, resistances, err := SupportResistance(highs, lows, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, supports)
	assert.Equal(t, []float64{7}, resistances)
}

func TestSupportResistanceInsufficientData(t *testing.T) {
	_, _, err := SupportResistance([]float64{1, 2, 3}, []float64{1, 2, 3}, 5)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
