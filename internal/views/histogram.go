package views

import (
	"math"
	"strconv"

	"github.com/KaramelBytes/beanview/internal/dataset"
)

// Axis labels shared by the histogram views.
const (
	ScoreAxisLabel   = "Score out of 100"
	SamplesAxisLabel = "Number of Samples"
	PercentAxisLabel = "Percent of Samples"
)

// MinScoreLower and MinScoreUpper bound the minimum score control.
const (
	MinScoreLower = 0
	MinScoreUpper = 100
)

// CountryBins is the number of bins of the country comparison histogram.
const CountryBins = 30

// BarMode tells the renderer how series share a bin.
type BarMode string

const (
	BarStack   BarMode = "stack"
	BarOverlay BarMode = "overlay"
)

// Norm is the unit of a histogram's bar heights.
type Norm string

const (
	NormCount   Norm = "count"
	NormPercent Norm = "percent"
)

// Series is one colored group of bars; Values is aligned with Histogram.Bins.
type Series struct {
	Name    string    `json:"name"`
	Values  []float64 `json:"values"`
	Samples int       `json:"samples"`
}

// Histogram describes a binned bar chart over total_cup_points.
type Histogram struct {
	Title   string   `json:"title"`
	Field   string   `json:"field"`
	ColorBy string   `json:"color_by"`
	XLabel  string   `json:"x_label"`
	YLabel  string   `json:"y_label"`
	BarMode BarMode  `json:"bar_mode"`
	Norm    Norm     `json:"norm"`
	Bins    []Bin    `json:"bins"`
	Series  []Series `json:"series"`
	// Total is the number of records in the histogram across all series.
	Total int `json:"total"`
}

// Counts sums the series per bin.
func (h *Histogram) Counts() []float64 {
	out := make([]float64, len(h.Bins))
	for _, s := range h.Series {
		for i, v := range s.Values {
			out[i] += v
		}
	}
	return out
}

// Options tunes view rendering.
type Options struct {
	// ScoreBinWidth is the bar width of the score histogram, in points.
	ScoreBinWidth float64
}

// DefaultOptions returns one-point bins for the score histogram.
func DefaultOptions() Options {
	return Options{ScoreBinWidth: 1}
}

// Renderer holds rendering options. Its methods are pure functions of the table and
// the parameters; a Renderer is safe for concurrent use.
type Renderer struct {
	opt Options
}

// NewRenderer returns a Renderer, replacing non-positive options with defaults.
func NewRenderer(opt Options) *Renderer {
	if opt.ScoreBinWidth <= 0 || math.IsNaN(opt.ScoreBinWidth) || math.IsInf(opt.ScoreBinWidth, 0) {
		opt.ScoreBinWidth = DefaultOptions().ScoreBinWidth
	}
	return &Renderer{opt: opt}
}

var defaultRenderer = NewRenderer(DefaultOptions())

// RenderScoreHistogram renders the score histogram with default options.
func RenderScoreHistogram(t *dataset.Table, minScore int) (*Histogram, error) {
	return defaultRenderer.ScoreHistogram(t, minScore)
}

// ScoreHistogram buckets records with total_cup_points >= minScore, stacked by variety.
// Bins span the whole table's score range so the axis does not move with minScore; an
// empty selection yields zero counts.
func (r *Renderer) ScoreHistogram(t *dataset.Table, minScore int) (*Histogram, error) {
	if minScore < MinScoreLower || minScore > MinScoreUpper {
		return nil, &ParameterError{Name: "min_score", Value: strconv.Itoa(minScore), Reason: "must be between 0 and 100"}
	}
	lo, hi, ok := t.ScoreRange()
	if !ok {
		lo, hi = float64(minScore), float64(minScore)
	}
	dividers := widthDividers(lo, hi, r.opt.ScoreBinWidth)

	threshold := float64(minScore)
	var order []string
	groups := map[string][]float64{}
	for i := range t.Records {
		rec := &t.Records[i]
		if rec.TotalCupPoints < threshold {
			continue
		}
		if _, seen := groups[rec.Variety]; !seen {
			order = append(order, rec.Variety)
		}
		groups[rec.Variety] = append(groups[rec.Variety], rec.TotalCupPoints)
	}

	h := &Histogram{
		Title:   "Coffee Score by Bean Variety",
		Field:   dataset.ColTotalCupPoints,
		ColorBy: dataset.ColVariety,
		XLabel:  ScoreAxisLabel,
		YLabel:  SamplesAxisLabel,
		BarMode: BarStack,
		Norm:    NormCount,
		Bins:    binsOf(dividers),
		Series:  []Series{},
	}
	for _, name := range order {
		vals := groups[name]
		h.Series = append(h.Series, Series{Name: name, Values: count(dividers, vals), Samples: len(vals)})
		h.Total += len(vals)
	}
	return h, nil
}
