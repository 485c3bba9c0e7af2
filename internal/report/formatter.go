package report

import (
	"fmt"
	"strings"

	"SignalOverlay/internal/calculator"
	"SignalOverlay/internal/model"
	"SignalOverlay/internal/pipeline"
	"SignalOverlay/internal/strategy"
)

// FormatSummary formats a run result for the terminal.
func FormatSummary(res *pipeline.Result) string {
	var b strings.Builder
	series := res.Series
	n := series.Len()

	b.WriteString(fmt.Sprintf("%s signal overlay | %d points", series.Symbol, n))
	if n > 0 {
		b.WriteString(fmt.Sprintf(" | %s .. %s",
			series.Points[0].Time.Format("2006-01-02"),
			series.Points[n-1].Time.Format("2006-01-02")))
	}
	b.WriteString("\n\n")

	closes := series.Closes()
	if high, low, err := calculator.PriceRange(closes); err == nil {
		b.WriteString(fmt.Sprintf("Range: %.4f - %.4f\n", low, high))
	}
	if n > 0 {
		b.WriteString(fmt.Sprintf("Last close: %.4f\n", closes[n-1]))
	}
	b.WriteString(fmt.Sprintf("Short MA: %s | Long MA: %s | RSI: %s\n\n",
		formatLast(res.Indicators.ShortMA), formatLast(res.Indicators.LongMA), formatLast(res.Indicators.RSI)))

	b.WriteString("Signals (buy / sell):\n")
	rows := []struct {
		name    string
		signals []model.Signal
		buy     strategy.Predicate
		sell    strategy.Predicate
	}{
		{"MA", res.Signals.MA, strategy.IsBuy, strategy.IsSell},
		{"RSI", res.Signals.RSI, strategy.IsBuy, strategy.IsSell},
		{"Combined", res.Signals.Combined, strategy.Equals(model.SignalStrongBuy), strategy.Equals(model.SignalStrongSell)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-9s %5d / %-5d\n", r.name, strategy.Count(r.signals, r.buy), strategy.Count(r.signals, r.sell)))
	}

	if res.Signals.Len() > 0 {
		last := res.Signals.Len() - 1
		b.WriteString(fmt.Sprintf("\nLatest: MA=%s RSI=%s Combined=%+d (%s)\n",
			res.Signals.MA[last], res.Signals.RSI[last], int(res.Signals.Combined[last]), res.Signals.Combined[last]))
	}
	return b.String()
}

func formatLast(values []float64) string {
	v, idx := calculator.LastDefined(values)
	if idx < 0 {
		return "n/a"
	}
	if idx != len(values)-1 {
		return fmt.Sprintf("%.4f (row %d)", v, idx+1)
	}
	return fmt.Sprintf("%.4f", v)
}
