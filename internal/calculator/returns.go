package calculator

import "StockRadar/internal/model"

// return windows in bars of daily data: ~1, 3, 6, and 12 months.
const (
	returnWindow1M  = 20
	returnWindow3M  = 60
	returnWindow6M  = 120
	returnWindow12M = 240
)

func trailingReturn(closes []float64, p int) model.Metric {
	n := len(closes)
	if n <= p {
		return model.None()
	}
	base := closes[n-1-p]
	if base == 0 {
		return model.None()
	}
	return model.Some((closes[n-1]/base - 1) * 100)
}

// PeriodReturns computes the percentage change from the latest close to
// the close p bars back for each standard window. Windows longer than
// the series are reported unavailable.
func PeriodReturns(closes []float64) model.PeriodReturns {
	return model.PeriodReturns{
		M1:  trailingReturn(closes, returnWindow1M),
		M3:  trailingReturn(closes, returnWindow3M),
		M6:  trailingReturn(closes, returnWindow6M),
		M12: trailingReturn(closes, returnWindow12M),
	}
}
