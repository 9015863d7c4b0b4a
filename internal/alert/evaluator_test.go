package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockRadar/internal/model"
)

var checkTime = time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

func TestPriceAlert(t *testing.T) {
	snap := &model.IndicatorSnapshot{Ticker: "AAPL", Close: 150}

	above := model.Alert{Type: model.AlertPrice, Ticker: "AAPL", Condition: model.CondAbove, Threshold: 140}
	trig, fired := Check(above, snap, checkTime)
	require.True(t, fired)
	assert.Equal(t, 150.0, trig.Value)
	assert.Contains(t, trig.Message, "AAPL")
	assert.Equal(t, checkTime, trig.At)

	_, fired = Check(model.Alert{Type: model.AlertPrice, Ticker: "AAPL", Condition: model.CondAbove, Threshold: 160}, snap, checkTime)
	assert.False(t, fired)

	_, fired = Check(model.Alert{Type: model.AlertPrice, Ticker: "AAPL", Condition: model.CondBelow, Threshold: 160}, snap, checkTime)
	assert.True(t, fired)
}

func TestRSIAlertUnavailable(t *testing.T) {
	snap := &model.IndicatorSnapshot{Ticker: "AAPL", Close: 150} // RSI invalid
	a := model.Alert{Type: model.AlertRSI, Ticker: "AAPL", Condition: model.CondBelow, Threshold: 30}
	_, fired := Check(a, snap, checkTime)
	assert.False(t, fired)

	snap.RSI = model.Some(25)
	_, fired = Check(a, snap, checkTime)
	assert.True(t, fired)
}

func TestMACDCrossoverFiresOnceAcrossSign(t *testing.T) {
	a := model.Alert{Type: model.AlertMACD, Ticker: "AAPL", Signal: model.MACDCrossover}

	// histogram walks -0.4 -> -0.1 -> 0.05: only the sign change fires
	hist := []float64{-0.4, -0.1, 0.05}
	firedCount := 0
	for i := 1; i < len(hist); i++ {
		snap := &model.IndicatorSnapshot{
			Ticker:       "AAPL",
			PrevMACDHist: model.Some(hist[i-1]),
			MACDHist:     model.Some(hist[i]),
		}
		if _, fired := Check(a, snap, checkTime); fired {
			firedCount++
		}
	}
	assert.Equal(t, 1, firedCount)
}

func TestMACDCrossunder(t *testing.T) {
	a := model.Alert{Type: model.AlertMACD, Ticker: "AAPL", Signal: model.MACDCrossunder}
	snap := &model.IndicatorSnapshot{
		Ticker:       "AAPL",
		PrevMACDHist: model.Some(0.1),
		MACDHist:     model.Some(-0.05),
	}
	trig, fired := Check(a, snap, checkTime)
	require.True(t, fired)
	assert.Contains(t, trig.Message, "crossunder")
}

func TestMACDAlertNeedsBothHistValues(t *testing.T) {
	a := model.Alert{Type: model.AlertMACD, Ticker: "AAPL", Signal: model.MACDCrossover}
	snap := &model.IndicatorSnapshot{Ticker: "AAPL", MACDHist: model.Some(0.1)}
	_, fired := Check(a, snap, checkTime)
	assert.False(t, fired)
}

func TestCheckAllSkipsMissingSnapshots(t *testing.T) {
	alerts := []model.Alert{
		{Type: model.AlertPrice, Ticker: "AAPL", Condition: model.CondAbove, Threshold: 100},
		{Type: model.AlertPrice, Ticker: "MSFT", Condition: model.CondAbove, Threshold: 100},
	}
	snapshots := map[string]*model.IndicatorSnapshot{
		"AAPL": {Ticker: "AAPL", Close: 150},
	}
	fired := CheckAll(alerts, snapshots, checkTime)
	require.Len(t, fired, 1)
	assert.Equal(t, "AAPL", fired[0].Alert.Ticker)
}
