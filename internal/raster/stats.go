package raster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises the rescaled intensities of an image.
type Stats struct {
	Min, Max float64
	Mean     float64
	StdDev   float64
}

// Rescaled returns every sample mapped through slope and intercept.
func (m *Image) Rescaled(slope, intercept float64) []float64 {
	out := make([]float64, len(m.Pix))
	for i, v := range m.Pix {
		out[i] = float64(v)*slope + intercept
	}
	return out
}

// Statistics computes min, max, mean and standard deviation.
func (m *Image) Statistics(slope, intercept float64) Stats {
	if len(m.Pix) == 0 {
		return Stats{}
	}
	values := m.Rescaled(slope, intercept)
	mean, std := stat.MeanStdDev(values, nil)
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1), Mean: mean, StdDev: std}
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	return s
}

// AutoWindow derives a window covering the [lo, hi] quantiles of the
// rescaled intensities. lo and hi are fractions in [0, 1].
func (m *Image) AutoWindow(slope, intercept, lo, hi float64) (width, center float64) {
	if len(m.Pix) == 0 {
		return 1, 0
	}
	values := m.Rescaled(slope, intercept)
	sort.Float64s(values)

	low := stat.Quantile(lo, stat.Empirical, values, nil)
	high := stat.Quantile(hi, stat.Empirical, values, nil)

	width = math.Max(high-low, 1)
	center = low + width/2
	return clampWindow(width), clampWindow(center)
}

func clampWindow(v float64) float64 {
	return math.Max(math.Min(v, 65535), 0)
}
