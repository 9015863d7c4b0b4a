package notifier

import (
	"fmt"
	"strings"

	"StockRadar/internal/model"
)

func fmtMetric(m model.Metric, digits int) string {
	if !m.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", digits, m.Value)
}

// FormatAnalysis renders one analysis record as a Telegram HTML message.
func FormatAnalysis(a *model.Analysis) string {
	var b strings.Builder
	snap := a.Snapshot

	fmt.Fprintf(&b, "<b>%s</b>  %.2f  [%s %d]\n", a.Ticker, a.Price, a.Breakdown.Decision, a.Breakdown.Total)
	fmt.Fprintf(&b, "RSI %s | StochRSI %s | EMA13 %s\n",
		fmtMetric(snap.RSI, 1), fmtMetric(snap.StochRSI, 2), fmtMetric(snap.EMA13, 2))
	fmt.Fprintf(&b, "MACD %s / signal %s / hist %s\n",
		fmtMetric(snap.MACD, 3), fmtMetric(snap.MACDSignal, 3), fmtMetric(snap.MACDHist, 3))
	fmt.Fprintf(&b, "BB %s / %s / %s", fmtMetric(snap.BBLower, 2), fmtMetric(snap.BBMiddle, 2), fmtMetric(snap.BBUpper, 2))
	if snap.Squeeze {
		b.WriteString("  (squeeze)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cloud %s | ATR %s (%s)\n", snap.CloudTrend, fmtMetric(snap.ATR, 2), snap.Volatility)

	if len(a.Breakdown.Contributions) > 0 {
		parts := make([]string, 0, len(a.Breakdown.Contributions))
		for _, c := range a.Breakdown.Contributions {
			parts = append(parts, fmt.Sprintf("%s %+d", c.Name, c.Points))
		}
		fmt.Fprintf(&b, "Score: %s\n", strings.Join(parts, ", "))
	}
	return b.String()
}

// FormatWatchlist renders a scan over multiple tickers, best score first.
func FormatWatchlist(analyses []*model.Analysis) string {
	if len(analyses) == 0 {
		return "Watchlist scan: no data"
	}
	var b strings.Builder
	b.WriteString("<b>Watchlist scan</b>\n")
	for _, a := range analyses {
		fmt.Fprintf(&b, "%-8s %8.2f  %3d  %s\n", a.Ticker, a.Price, a.Breakdown.Total, a.Breakdown.Decision)
	}
	return b.String()
}

// FormatTriggeredAlerts renders fired alerts as one message.
func FormatTriggeredAlerts(fired []model.TriggeredAlert) string {
	if len(fired) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<b>Alerts</b>\n")
	for _, t := range fired {
		fmt.Fprintf(&b, "• %s\n", t.Message)
	}
	return b.String()
}
