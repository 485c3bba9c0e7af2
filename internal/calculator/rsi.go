package calculator

import (
	"fmt"

	"SignalOverlay/internal/model"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/momentum"
)

// RollingRSI computes the RSI at every index using plain rolling means of
// gains and losses over window deltas. The first delta does not exist and
// counts as no movement, so the first value is available at index window-1.
func RollingRSI(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("rsi window %d: %w", window, ErrInvalidWindow)
	}
	n := len(closes)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else if change < 0 {
			losses[i] = -change
		}
	}

	out := make([]float64, n)
	for i := range out {
		if i < window-1 {
			out[i] = model.Undefined()
			continue
		}
		var sumGain, sumLoss float64
		for j := i - window + 1; j <= i; j++ {
			sumGain += gains[j]
			sumLoss += losses[j]
		}
		out[i] = rsiFromAverages(sumGain/float64(window), sumLoss/float64(window))
	}
	return out, nil
}

// WilderRSI computes the Wilder-smoothed RSI at every index. The result is
// right-aligned with closes; the warm-up prefix is NaN.
func WilderRSI(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("rsi window %d: %w", window, ErrInvalidWindow)
	}
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = model.Undefined()
	}
	if len(closes) <= window {
		return out, nil
	}

	rsi := momentum.NewRsiWithPeriod[float64](window)
	values := helper.ChanToSlice(rsi.Compute(helper.SliceToChan(closes)))

	offset := len(closes) - len(values)
	if offset < 0 {
		return nil, fmt.Errorf("rsi produced %d values for %d closes", len(values), len(closes))
	}
	for i, v := range values {
		if !model.Defined(v) {
			// 0/0: no gains and no losses since the start of the series.
			v = rsiFromAverages(0, 0)
		}
		out[offset+i] = v
	}
	return out, nil
}

// rsiFromAverages turns average gain and loss into an RSI in [0, 100].
// A zero average loss gives 100 on any gain and 50 on a flat window.
func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain > 0 {
			return 100.0
		}
		return 50.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
