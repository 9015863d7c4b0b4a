// Package alert evaluates user-defined threshold and crossover alerts
// against the latest indicator snapshot, and persists alert definitions.
package alert

import (
	"fmt"
	"time"

	"StockRadar/internal/model"
)

// Check re-evaluates one alert against a snapshot. Evaluation is
// stateless: there is no fired flag, the same alert fires again on the
// next call if its condition still holds. Alerts whose inputs are
// unavailable silently do not fire.
func Check(a model.Alert, snap *model.IndicatorSnapshot, now time.Time) (model.TriggeredAlert, bool) {
	switch a.Type {
	case model.AlertPrice:
		return checkThreshold(a, snap.Close, "price", now)
	case model.AlertRSI:
		if !snap.RSI.Valid {
			return model.TriggeredAlert{}, false
		}
		return checkThreshold(a, snap.RSI.Value, "RSI", now)
	case model.AlertMACD:
		return checkMACD(a, snap, now)
	}
	return model.TriggeredAlert{}, false
}

// CheckAll evaluates every alert whose ticker has a snapshot.
func CheckAll(alerts []model.Alert, snapshots map[string]*model.IndicatorSnapshot, now time.Time) []model.TriggeredAlert {
	var out []model.TriggeredAlert
	for _, a := range alerts {
		snap, ok := snapshots[a.Ticker]
		if !ok {
			continue
		}
		if trig, fired := Check(a, snap, now); fired {
			out = append(out, trig)
		}
	}
	return out
}

func checkThreshold(a model.Alert, value float64, what string, now time.Time) (model.TriggeredAlert, bool) {
	fired := (a.Condition == model.CondAbove && value > a.Threshold) ||
		(a.Condition == model.CondBelow && value < a.Threshold)
	if !fired {
		return model.TriggeredAlert{}, false
	}
	dir := "above"
	if a.Condition == model.CondBelow {
		dir = "below"
	}
	return model.TriggeredAlert{
		Alert:   a,
		Value:   value,
		Message: fmt.Sprintf("%s: %s %s %.2f -> %.2f", a.Ticker, what, dir, a.Threshold, value),
		At:      now,
	}, true
}

func checkMACD(a model.Alert, snap *model.IndicatorSnapshot, now time.Time) (model.TriggeredAlert, bool) {
	// Crossover detection needs two trailing histogram values.
	if !snap.MACDHist.Valid || !snap.PrevMACDHist.Valid {
		return model.TriggeredAlert{}, false
	}
	prev, cur := snap.PrevMACDHist.Value, snap.MACDHist.Value
	var fired bool
	var msg string
	switch a.Signal {
	case model.MACDCrossover:
		fired = prev <= 0 && cur > 0
		msg = fmt.Sprintf("%s: MACD bullish crossover (hist %.4f -> %.4f)", a.Ticker, prev, cur)
	case model.MACDCrossunder:
		fired = prev >= 0 && cur < 0
		msg = fmt.Sprintf("%s: MACD bearish crossunder (hist %.4f -> %.4f)", a.Ticker, prev, cur)
	}
	if !fired {
		return model.TriggeredAlert{}, false
	}
	return model.TriggeredAlert{Alert: a, Value: cur, Message: msg, At: now}, true
}
