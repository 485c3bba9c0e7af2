package calculator

import (
	"errors"
	"fmt"

	"SignalOverlay/internal/model"
)

// ErrInvalidWindow is returned for a non-positive window or period.
var ErrInvalidWindow = errors.New("window must be positive")

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidWindow
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingSMA returns the simple moving average at every index of closes.
// out[i] is the exact mean of closes[i-window+1..i] and NaN while fewer than
// window closes are available.
func RollingSMA(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("sma window %d: %w", window, ErrInvalidWindow)
	}
	out := make([]float64, len(closes))
	for i := range closes {
		if i < window-1 {
			out[i] = model.Undefined()
			continue
		}
		// Summing each window keeps every value independent of earlier rounding.
		ma, err := CalculateSMA(closes[i-window+1:i+1], window)
		if err != nil {
			return nil, err
		}
		out[i] = ma
	}
	return out, nil
}
