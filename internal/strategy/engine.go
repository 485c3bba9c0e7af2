package strategy

import "SignalOverlay/internal/model"

// Thresholds holds the RSI bounds.
type Thresholds struct {
	Overbought float64
	Oversold   float64
}

// DefaultThresholds returns the conventional 70/30 bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{Overbought: 70, Oversold: 30}
}

// Evaluate derives the MA, RSI and combined signals for every row.
// Rows whose inputs are undefined yield neutral signals.
func Evaluate(ind *model.IndicatorSeries, th Thresholds) *model.SignalSeries {
	n := ind.Len()
	out := &model.SignalSeries{
		MA:       make([]model.Signal, n),
		RSI:      make([]model.Signal, n),
		Combined: make([]model.Signal, n),
	}
	for i := 0; i < n; i++ {
		ma := scoreMACrossover(ind.ShortMA[i], ind.LongMA[i])
		var rsi model.Signal
		if i < len(ind.RSI) {
			rsi = scoreRSIThreshold(ind.RSI[i], th)
		}
		out.MA[i] = ma
		out.RSI[i] = rsi
		out.Combined[i] = ma + rsi
	}
	return out
}
