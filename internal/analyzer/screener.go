package analyzer

import (
	"sort"

	"StockRadar/internal/model"
)

// ScreenFilter holds the screener thresholds. Zero values disable the
// corresponding filter except the RSI band, which always applies.
type ScreenFilter struct {
	RSIMin         float64 `json:"rsi_min"`
	RSIMax         float64 `json:"rsi_max"`
	ROEMin         float64 `json:"roe_min"`
	PriceToBookMax float64 `json:"price_to_book_max"`
	VolumeMin      float64 `json:"volume_min"`
}

// DefaultScreenFilter mirrors the conventional screening defaults:
// RSI 30-70, ROE >= 10%, P/B <= 3, volume >= 1M.
func DefaultScreenFilter() ScreenFilter {
	return ScreenFilter{
		RSIMin:         30,
		RSIMax:         70,
		ROEMin:         10,
		PriceToBookMax: 3,
		VolumeMin:      1_000_000,
	}
}

// Screen filters analyses against the thresholds and returns the
// survivors sorted by composite score, best first. Missing fundamentals
// count as zero, so a positive ROE floor excludes them and a P/B
// ceiling admits them.
func Screen(analyses map[string]*model.Analysis, f ScreenFilter) []*model.Analysis {
	var out []*model.Analysis
	for _, a := range analyses {
		if !a.Snapshot.RSI.Valid {
			continue
		}
		rsi := a.Snapshot.RSI.Value
		if rsi < f.RSIMin || rsi > f.RSIMax {
			continue
		}
		roe := 0.0
		if a.Fundamentals.ReturnOnEquity.Valid {
			roe = a.Fundamentals.ReturnOnEquity.Value
		}
		if roe < f.ROEMin {
			continue
		}
		pb := 0.0
		if a.Fundamentals.PriceToBook.Valid {
			pb = a.Fundamentals.PriceToBook.Value
		}
		if f.PriceToBookMax > 0 && pb > f.PriceToBookMax {
			continue
		}
		if a.Snapshot.Volume < f.VolumeMin {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Breakdown.Total != out[j].Breakdown.Total {
			return out[i].Breakdown.Total > out[j].Breakdown.Total
		}
		return out[i].Ticker < out[j].Ticker // deterministic tie-break
	})
	return out
}
