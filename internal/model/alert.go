package model

import "time"

// AlertType selects which quantity an alert watches.
type AlertType string

const (
	AlertPrice AlertType = "PRICE"
	AlertRSI   AlertType = "RSI"
	AlertMACD  AlertType = "MACD"
)

// Condition is a threshold comparison direction.
type Condition string

const (
	CondAbove Condition = "ABOVE"
	CondBelow Condition = "BELOW"
)

// MACDSignalKind selects the histogram zero-crossing direction.
type MACDSignalKind string

const (
	MACDCrossover  MACDSignalKind = "CROSSOVER"
	MACDCrossunder MACDSignalKind = "CROSSUNDER"
)

// Alert is a user-defined threshold or crossover condition. Evaluation is
// stateless: an alert holds no fired/ack state and is re-checked on demand.
type Alert struct {
	ID        string         `json:"id"`
	Type      AlertType      `json:"type"`
	Ticker    string         `json:"ticker"`
	Condition Condition      `json:"condition,omitempty"` // price/RSI alerts
	Threshold float64        `json:"threshold,omitempty"` // target price or RSI level
	Signal    MACDSignalKind `json:"signal,omitempty"`    // MACD alerts
	CreatedAt time.Time      `json:"created_at"`
}

// TriggeredAlert pairs a firing alert with the observed value.
type TriggeredAlert struct {
	Alert   Alert     `json:"alert"`
	Value   float64   `json:"value"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
