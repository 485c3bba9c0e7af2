package model

import "math"

// IndicatorSeries holds the rolling indicators, each aligned by index with the
// price series. Values inside the warm-up window are NaN.
type IndicatorSeries struct {
	ShortMA []float64
	LongMA  []float64
	RSI     []float64
}

// Len returns the length of the aligned series.
func (s *IndicatorSeries) Len() int { return len(s.ShortMA) }

// Defined reports whether v carries a value (not NaN and not infinite).
func Defined(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Undefined is the placeholder for rows without enough history.
func Undefined() float64 { return math.NaN() }
