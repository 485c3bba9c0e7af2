package pipeline

import (
	"fmt"
	"log"

	"SignalOverlay/internal/calculator"
	"SignalOverlay/internal/chart"
	"SignalOverlay/internal/collector"
	"SignalOverlay/internal/model"
	"SignalOverlay/internal/strategy"
)

// Renderer draws the final chart.
type Renderer interface {
	Render(in *chart.Input) error
}

// Result holds every intermediate product of one run.
type Result struct {
	Series     *model.PriceSeries
	Indicators *model.IndicatorSeries
	Signals    *model.SignalSeries
	Overlays   []model.Overlay
}

// Pipeline runs load, indicators, signals and rendering once, in order.
type Pipeline struct {
	Collector  *collector.Collector
	Params     calculator.Params
	Thresholds strategy.Thresholds
	Renderer   Renderer // nil skips rendering
}

// New creates a Pipeline.
func New(col *collector.Collector, params calculator.Params, th strategy.Thresholds, r Renderer) *Pipeline {
	return &Pipeline{
		Collector:  col,
		Params:     params,
		Thresholds: th,
		Renderer:   r,
	}
}

// Analyze runs every stage except rendering.
func (p *Pipeline) Analyze() (*Result, error) {
	series, err := p.Collector.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	ind, err := calculator.Compute(series.Closes(), p.Params)
	if err != nil {
		return nil, fmt.Errorf("compute indicators: %w", err)
	}
	if series.Len() < p.Params.LongWindow {
		log.Printf("[WARN] only %d points, long MA(%d) is never defined; MA signals stay neutral",
			series.Len(), p.Params.LongWindow)
	}

	signals := strategy.Evaluate(ind, p.Thresholds)
	return &Result{
		Series:     series,
		Indicators: ind,
		Signals:    signals,
		Overlays:   strategy.Overlays(series, signals),
	}, nil
}

// Run analyzes the series and renders the chart.
func (p *Pipeline) Run() (*Result, error) {
	res, err := p.Analyze()
	if err != nil {
		return nil, err
	}
	if p.Renderer == nil {
		return res, nil
	}
	if err := p.Renderer.Render(&chart.Input{
		Series:   res.Series,
		ShortMA:  res.Indicators.ShortMA,
		LongMA:   res.Indicators.LongMA,
		Overlays: res.Overlays,
	}); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return res, nil
}
