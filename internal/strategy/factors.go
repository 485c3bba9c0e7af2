package strategy

import "SignalOverlay/internal/model"

// scoreMACrossover compares the short and long moving averages.
// Bullish: short > long. Bearish: short < long.
// Equal or undefined inputs stay neutral.
func scoreMACrossover(shortMA, longMA float64) model.Signal {
	if !model.Defined(shortMA) || !model.Defined(longMA) {
		return model.SignalNeutral
	}
	switch {
	case shortMA > longMA:
		return model.SignalBuy
	case shortMA < longMA:
		return model.SignalSell
	default:
		return model.SignalNeutral
	}
}

// scoreRSIThreshold reads the RSI as a contrarian signal.
// Overbought sells, oversold buys; both bounds are exclusive.
func scoreRSIThreshold(rsi float64, th Thresholds) model.Signal {
	if !model.Defined(rsi) {
		return model.SignalNeutral
	}
	switch {
	case rsi > th.Overbought:
		return model.SignalSell
	case rsi < th.Oversold:
		return model.SignalBuy
	default:
		return model.SignalNeutral
	}
}
