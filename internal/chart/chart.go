package chart

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"time"

	"SignalOverlay/internal/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Input is everything the renderer draws.
type Input struct {
	Series   *model.PriceSeries
	ShortMA  []float64
	LongMA   []float64
	Overlays []model.Overlay
}

// Renderer writes a static chart file. The format follows the output
// extension (png, svg, pdf, ...).
type Renderer struct {
	Output string
	Title  string
	Width  vg.Length
	Height vg.Length
}

// NewRenderer creates a renderer with the figure size in inches.
func NewRenderer(output, title string, widthInch, heightInch float64) *Renderer {
	return &Renderer{
		Output: output,
		Title:  title,
		Width:  vg.Length(widthInch) * vg.Inch,
		Height: vg.Length(heightInch) * vg.Inch,
	}
}

var (
	priceColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	shortMAColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	longMAColor  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// markerStyle maps an overlay to its glyph.
type markerStyle struct {
	shape draw.GlyphDrawer
	color color.Color
}

var markerStyles = map[model.OverlayKind][2]markerStyle{
	// index 0 is buy, 1 is sell
	model.OverlayMA: {
		{draw.PyramidGlyph{}, color.RGBA{G: 128, A: 255}},
		{invertedPyramidGlyph{}, color.RGBA{R: 255, A: 255}},
	},
	model.OverlayRSI: {
		{draw.CircleGlyph{}, color.RGBA{B: 255, A: 255}},
		{draw.CrossGlyph{}, color.RGBA{R: 191, B: 191, A: 255}},
	},
	model.OverlayCombined: {
		{starGlyph{}, color.RGBA{R: 191, G: 191, A: 255}},
		{diamondGlyph{}, color.RGBA{G: 191, B: 191, A: 255}},
	},
}

// Build assembles the plot without writing it.
func (r *Renderer) Build(in *Input) (*plot.Plot, error) {
	if in.Series == nil || in.Series.Len() == 0 {
		return nil, fmt.Errorf("chart: empty price series")
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	times := in.Series.Times()
	lines := []struct {
		label  string
		values []float64
		color  color.Color
	}{
		{fmt.Sprintf("%s Price", in.Series.Symbol), in.Series.Closes(), priceColor},
		{"Short MA", in.ShortMA, shortMAColor},
		{"Long MA", in.LongMA, longMAColor},
	}
	for _, l := range lines {
		xys := definedXYs(times, l.values)
		if len(xys) == 0 {
			log.Printf("[WARN] chart: %s has no defined values, skipped", l.label)
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", l.label, err)
		}
		line.LineStyle.Color = l.color
		line.LineStyle.Width = vg.Points(1.2)
		p.Add(line)
		p.Legend.Add(l.label, line)
	}

	for _, o := range in.Overlays {
		if len(o.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(o.Points))
		for i, pt := range o.Points {
			xys[i] = plotter.XY{X: unix(pt.Time), Y: pt.Close}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", o.Label(), err)
		}
		style := markerStyles[o.Kind][sideIndex(o.Buy)]
		sc.GlyphStyle.Shape = style.shape
		sc.GlyphStyle.Color = style.color
		sc.GlyphStyle.Radius = vg.Points(3.5)
		p.Add(sc)
		p.Legend.Add(o.Label(), sc)
	}
	return p, nil
}

// Render builds the plot and saves it to Output.
func (r *Renderer) Render(in *Input) error {
	p, err := r.Build(in)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	if err := p.Save(r.Width, r.Height, r.Output); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	log.Printf("[INFO] chart written to %s", r.Output)
	return nil
}

// definedXYs pairs times with values, dropping undefined entries.
func definedXYs(times []time.Time, values []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if i >= len(times) || !model.Defined(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: unix(times[i]), Y: v})
	}
	return xys
}

func unix(t time.Time) float64 { return float64(t.Unix()) }

func sideIndex(buy bool) int {
	if buy {
		return 0
	}
	return 1
}
