package model

import "time"

// Signal is a discrete trade indication.
type Signal int

const (
	SignalStrongSell Signal = -2
	SignalSell       Signal = -1
	SignalNeutral    Signal = 0
	SignalBuy        Signal = 1
	SignalStrongBuy  Signal = 2
)

// String returns a short label for logs and reports.
func (s Signal) String() string {
	switch s {
	case SignalStrongSell:
		return "STRONG_SELL"
	case SignalSell:
		return "SELL"
	case SignalNeutral:
		return "NEUTRAL"
	case SignalBuy:
		return "BUY"
	case SignalStrongBuy:
		return "STRONG_BUY"
	default:
		return "UNKNOWN"
	}
}

// SignalSeries holds the three signal sequences aligned with the price series.
type SignalSeries struct {
	MA       []Signal
	RSI      []Signal
	Combined []Signal
}

// Len returns the length of the aligned series.
func (s *SignalSeries) Len() int { return len(s.Combined) }

// SignalPoint is a marker position for the chart.
type SignalPoint struct {
	Index int
	Time  time.Time
	Close float64
}

// OverlayKind identifies which strategy an overlay belongs to.
type OverlayKind string

const (
	OverlayMA       OverlayKind = "MA"
	OverlayRSI      OverlayKind = "RSI"
	OverlayCombined OverlayKind = "Combined"
)

// Overlay is one buy or sell scatter layer.
type Overlay struct {
	Kind   OverlayKind
	Buy    bool
	Points []SignalPoint
}

// Label returns the legend text, e.g. "Buy Signal (MA)".
func (o Overlay) Label() string {
	side := "Sell"
	if o.Buy {
		side = "Buy"
	}
	return side + " Signal (" + string(o.Kind) + ")"
}
