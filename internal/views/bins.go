package views

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is the half-open score interval [Lo, Hi) of one bar.
type Bin struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// widthDividers returns bin edges of the given width aligned to multiples of width,
// covering [lo, hi].
func widthDividers(lo, hi, width float64) []float64 {
	start := math.Floor(lo/width) * width
	n := int(math.Floor(hi/width)-math.Floor(lo/width)) + 1
	if n < 1 {
		n = 1
	}
	d := floats.Span(make([]float64, n+1), start, start+float64(n)*width)
	if d[0] > lo {
		d[0] = lo
	}
	if d[n] <= hi {
		d[n] = math.Nextafter(hi, math.Inf(1))
	}
	return d
}

// countDividers returns n+1 edges of n equal-width bins spanning [lo, hi]. A zero-width
// range is widened by half a point on each side.
func countDividers(lo, hi float64, n int) []float64 {
	if hi <= lo {
		lo -= 0.5
		hi += 0.5
	}
	d := floats.Span(make([]float64, n+1), lo, hi)
	// The top edge is exclusive in stat.Histogram; keep the maximum inside the last bin.
	d[n] = math.Nextafter(hi, math.Inf(1))
	return d
}

func binsOf(dividers []float64) []Bin {
	out := make([]Bin, len(dividers)-1)
	for i := range out {
		out[i] = Bin{Lo: dividers[i], Hi: dividers[i+1]}
	}
	return out
}

func count(dividers, values []float64) []float64 {
	x := make([]float64, len(values))
	copy(x, values)
	sort.Float64s(x)
	return stat.Histogram(nil, dividers, x, nil)
}
