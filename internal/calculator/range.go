package calculator

import (
	"errors"
	"math"

	"SignalOverlay/internal/model"
)

// PriceRange scans the defined values and returns the high and low.
func PriceRange(values []float64) (high, low float64, err error) {
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, v := range values {
		if !model.Defined(v) {
			continue
		}
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	if math.IsInf(high, -1) {
		return 0, 0, errors.New("no defined values provided")
	}
	return high, low, nil
}

// LastDefined returns the most recent defined value and its index, or -1.
func LastDefined(values []float64) (float64, int) {
	for i := len(values) - 1; i >= 0; i-- {
		if model.Defined(values[i]) {
			return values[i], i
		}
	}
	return model.Undefined(), -1
}
