package strategy

import "SignalOverlay/internal/model"

// Predicate decides whether a signal is selected.
type Predicate func(model.Signal) bool

// IsBuy selects any bullish signal.
func IsBuy(s model.Signal) bool { return s > 0 }

// IsSell selects any bearish signal.
func IsSell(s model.Signal) bool { return s < 0 }

// Equals selects signals equal to v.
func Equals(v model.Signal) Predicate {
	return func(s model.Signal) bool { return s == v }
}

// Select returns the indices whose signal satisfies pred, in ascending order.
func Select(signals []model.Signal, pred Predicate) []int {
	var idx []int
	for i, s := range signals {
		if pred(s) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Points maps selected indices onto the price series.
func Points(series *model.PriceSeries, idx []int) []model.SignalPoint {
	points := make([]model.SignalPoint, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= series.Len() {
			continue
		}
		p := series.Points[i]
		points = append(points, model.SignalPoint{Index: i, Time: p.Time, Close: p.Close})
	}
	return points
}

// Overlays builds the six chart layers: buy and sell for MA and RSI, and
// strong buy / strong sell for the combined signal.
func Overlays(series *model.PriceSeries, sig *model.SignalSeries) []model.Overlay {
	layers := []struct {
		kind    model.OverlayKind
		buy     bool
		signals []model.Signal
		pred    Predicate
	}{
		{model.OverlayMA, true, sig.MA, Equals(model.SignalBuy)},
		{model.OverlayMA, false, sig.MA, Equals(model.SignalSell)},
		{model.OverlayRSI, true, sig.RSI, Equals(model.SignalBuy)},
		{model.OverlayRSI, false, sig.RSI, Equals(model.SignalSell)},
		{model.OverlayCombined, true, sig.Combined, Equals(model.SignalStrongBuy)},
		{model.OverlayCombined, false, sig.Combined, Equals(model.SignalStrongSell)},
	}

	out := make([]model.Overlay, 0, len(layers))
	for _, l := range layers {
		out = append(out, model.Overlay{
			Kind:   l.kind,
			Buy:    l.buy,
			Points: Points(series, Select(l.signals, l.pred)),
		})
	}
	return out
}

// Count returns how many signals satisfy pred.
func Count(signals []model.Signal, pred Predicate) int {
	n := 0
	for _, s := range signals {
		if pred(s) {
			n++
		}
	}
	return n
}
