package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"StockRadar/internal/model"
)

func sampleAnalysis() *model.Analysis {
	return &model.Analysis{
		Ticker: "AAPL",
		Price:  187.32,
		Snapshot: model.IndicatorSnapshot{
			Ticker:     "AAPL",
			Close:      187.32,
			RSI:        model.Some(58.4),
			EMA13:      model.Some(183.1),
			MACDHist:   model.Some(0.42),
			Squeeze:    true,
			Bandwidth:  model.Some(0.08),
			CloudTrend: model.TrendBullish,
			Volatility: model.VolatilityMedium,
		},
		Breakdown: model.ScoreBreakdown{
			Contributions: []model.Contribution{
				{Name: "price_above_ema", Points: 50},
				{Name: "rsi_band", Points: 30},
			},
			Total:    80,
			Decision: model.DecisionStrongBuy,
		},
	}
}

func TestFormatAnalysis(t *testing.T) {
	msg := FormatAnalysis(sampleAnalysis())
	assert.Contains(t, msg, "AAPL")
	assert.Contains(t, msg, "STRONG_BUY")
	assert.Contains(t, msg, "58.4")
	assert.Contains(t, msg, "squeeze")
	assert.Contains(t, msg, "price_above_ema +50")
}

func TestFormatAnalysisUnavailableMetrics(t *testing.T) {
	a := sampleAnalysis()
	a.Snapshot.RSI = model.None()
	msg := FormatAnalysis(a)
	assert.Contains(t, msg, "RSI n/a")
}

func TestFormatWatchlist(t *testing.T) {
	msg := FormatWatchlist([]*model.Analysis{sampleAnalysis()})
	assert.Contains(t, msg, "Watchlist scan")
	assert.Contains(t, msg, "AAPL")

	assert.Equal(t, "Watchlist scan: no data", FormatWatchlist(nil))
}

func TestFormatTriggeredAlerts(t *testing.T) {
	assert.Empty(t, FormatTriggeredAlerts(nil))

	fired := []model.TriggeredAlert{{
		Alert:   model.Alert{Type: model.AlertPrice, Ticker: "AAPL"},
		Value:   190,
		Message: "AAPL: price above 185.00 -> 190.00",
		At:      time.Now(),
	}}
	msg := FormatTriggeredAlerts(fired)
	assert.Contains(t, msg, "Alerts")
	assert.Contains(t, msg, "AAPL: price above")
}
