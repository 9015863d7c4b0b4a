package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodReturnsUptrend(t *testing.T) {
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	r := PeriodReturns(closes)

	assert.True(t, r.M1.Valid)
	assert.True(t, r.M3.Valid)
	assert.True(t, r.M6.Valid)
	assert.True(t, r.M12.Valid)
	assert.Greater(t, r.M1.Value, 0.0)
	// longer window, larger gain on a steady uptrend
	assert.Greater(t, r.M12.Value, r.M1.Value)
	// 349 vs 109 twenty bars earlier
	assert.InDelta(t, (349.0/329.0-1)*100, r.M1.Value, 1e-9)
}

func TestPeriodReturnsShortSeries(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	r := PeriodReturns(closes)
	assert.True(t, r.M1.Valid)
	assert.True(t, r.M3.Valid)
	assert.False(t, r.M6.Valid)
	assert.False(t, r.M12.Valid)
}
