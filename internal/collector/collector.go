package collector

import (
	"fmt"
	"log"
	"math"
	"time"

	"SignalOverlay/internal/model"
)

// MockSource returns deterministic synthetic data for development and testing.
type MockSource struct {
	BasePrice float64
	Days      int
	Start     time.Time
	Data      []model.PricePoint
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Load() ([]model.PricePoint, error) {
	if m.Data != nil {
		return m.Data, nil
	}
	if m.Days <= 0 {
		return nil, fmt.Errorf("mock: %w", ErrNoRows)
	}
	start := m.Start
	if start.IsZero() {
		start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return generateMockPoints(m.BasePrice, m.Days, start), nil
}

// generateMockPoints produces a slow drift with a superimposed swing so both
// MA crossovers and RSI extremes appear.
func generateMockPoints(basePrice float64, count int, start time.Time) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		swing := 0.06 * math.Sin(float64(i)/15)
		drift := float64(i-count/2) * 0.0005
		points[i] = model.PricePoint{
			Time:  start.AddDate(0, 0, i),
			Close: basePrice * (1 + swing + drift),
		}
	}
	return points
}

// Collector loads a price series from its source.
type Collector struct {
	Source Source
	Symbol string
}

// NewCollector creates a new Collector.
func NewCollector(source Source, symbol string) *Collector {
	return &Collector{Source: source, Symbol: symbol}
}

// Collect loads the series. Row order is kept as read.
func (c *Collector) Collect() (*model.PriceSeries, error) {
	points, err := c.Source.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.Source.Name(), err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("load %s: %w", c.Source.Name(), ErrNoRows)
	}

	series := &model.PriceSeries{
		Symbol:   c.Symbol,
		Points:   points,
		LoadedAt: time.Now(),
	}
	log.Printf("[INFO] loaded %d %s points from %s (%s .. %s)",
		len(points), c.Symbol, c.Source.Name(),
		points[0].Time.Format("2006-01-02"), points[len(points)-1].Time.Format("2006-01-02"))
	return series, nil
}
