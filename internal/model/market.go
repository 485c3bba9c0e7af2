package model

import "time"

// PricePoint is one daily close.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds the loaded price data for analysis.
// Points are expected in chronological order; this is not validated.
type PriceSeries struct {
	Symbol   string
	Points   []PricePoint
	LoadedAt time.Time
}

// Len returns the number of points.
func (s *PriceSeries) Len() int { return len(s.Points) }

// Closes returns a new slice of close prices aligned with Points.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Times returns a new slice of timestamps aligned with Points.
func (s *PriceSeries) Times() []time.Time {
	times := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		times[i] = p.Time
	}
	return times
}
