package model

// Decision is the categorical trading label derived from the composite score.
type Decision string

const (
	DecisionStrongBuy Decision = "STRONG_BUY"
	DecisionHold      Decision = "WATCH_HOLD"
	DecisionWait      Decision = "WAIT"
	DecisionAvoid     Decision = "AVOID_SELL"
)

// Contribution is a single scoring rule's point award.
type Contribution struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ScoreBreakdown is the full result of one composite evaluation. Created
// fresh per call; not stored anywhere.
type ScoreBreakdown struct {
	Contributions []Contribution `json:"contributions"`
	Total         int            `json:"total"`
	Decision      Decision       `json:"decision"`
}

// Fundamentals carries the externally supplied valuation scalars used by
// the scoring engine. Either field may be unavailable.
type Fundamentals struct {
	PriceToBook    Metric `json:"price_to_book"`
	ReturnOnEquity Metric `json:"return_on_equity"` // percent
}

// Analysis is the read-only per-ticker record exposed to presentation
// layers: price, every indicator, the externally supplied scalars, and
// the composite verdict.
type Analysis struct {
	Ticker       string            `json:"ticker"`
	Price        float64           `json:"price"`
	Snapshot     IndicatorSnapshot `json:"snapshot"`
	Fundamentals Fundamentals      `json:"fundamentals"`
	Sentiment    float64           `json:"sentiment"`
	Breakdown    ScoreBreakdown    `json:"breakdown"`
}
