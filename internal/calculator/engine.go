package calculator

import (
	"fmt"
	"strings"

	"SignalOverlay/internal/model"
)

// RSI smoothing modes.
const (
	SmoothingSimple = "simple"
	SmoothingWilder = "wilder"
)

// Params configures the indicator windows.
type Params struct {
	ShortWindow  int
	LongWindow   int
	RSIWindow    int
	RSISmoothing string
}

// DefaultParams returns the 10/50/14 windows with simple RSI averaging.
func DefaultParams() Params {
	return Params{
		ShortWindow:  10,
		LongWindow:   50,
		RSIWindow:    14,
		RSISmoothing: SmoothingSimple,
	}
}

// Compute derives the short MA, long MA and RSI series from the closes.
// The input is not modified; every output has len(closes) entries.
func Compute(closes []float64, p Params) (*model.IndicatorSeries, error) {
	shortMA, err := RollingSMA(closes, p.ShortWindow)
	if err != nil {
		return nil, fmt.Errorf("short ma: %w", err)
	}
	longMA, err := RollingSMA(closes, p.LongWindow)
	if err != nil {
		return nil, fmt.Errorf("long ma: %w", err)
	}

	var rsi []float64
	switch strings.ToLower(p.RSISmoothing) {
	case "", SmoothingSimple:
		rsi, err = RollingRSI(closes, p.RSIWindow)
	case SmoothingWilder:
		rsi, err = WilderRSI(closes, p.RSIWindow)
	default:
		return nil, fmt.Errorf("unknown rsi smoothing %q", p.RSISmoothing)
	}
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}

	return &model.IndicatorSeries{
		ShortMA: shortMA,
		LongMA:  longMA,
		RSI:     rsi,
	}, nil
}
