package views

import (
	"github.com/KaramelBytes/beanview/internal/dataset"
)

// RenderCountryHistogram renders the country comparison with default options.
func RenderCountryHistogram(t *dataset.Table, country1, country2 string, normalize bool) (*Histogram, error) {
	return defaultRenderer.CountryHistogram(t, country1, country2, normalize)
}

// CountryHistogram overlays the score distributions of two countries in CountryBins
// equal-width bins spanning the selected records. With normalize each series is a
// percentage of its own country's records. Passing the same country twice yields a
// single series.
func (r *Renderer) CountryHistogram(t *dataset.Table, country1, country2 string, normalize bool) (*Histogram, error) {
	for _, c := range []string{country1, country2} {
		if !t.HasCountry(c) {
			return nil, &CountryError{Name: c}
		}
	}
	selected := []string{country1}
	if country2 != country1 {
		selected = append(selected, country2)
	}

	groups := make(map[string][]float64, len(selected))
	var all []float64
	for i := range t.Records {
		rec := &t.Records[i]
		if rec.Country != country1 && rec.Country != country2 {
			continue
		}
		groups[rec.Country] = append(groups[rec.Country], rec.TotalCupPoints)
		all = append(all, rec.TotalCupPoints)
	}
	lo, hi := bounds(all)
	dividers := countDividers(lo, hi, CountryBins)

	h := &Histogram{
		Title:   "Compare Score Distribution Between Countries",
		Field:   dataset.ColTotalCupPoints,
		ColorBy: dataset.ColCountry,
		XLabel:  ScoreAxisLabel,
		YLabel:  SamplesAxisLabel,
		BarMode: BarOverlay,
		Norm:    NormCount,
		Bins:    binsOf(dividers),
		Series:  make([]Series, 0, len(selected)),
	}
	if normalize {
		h.Norm = NormPercent
		h.YLabel = PercentAxisLabel
	}
	for _, name := range selected {
		vals := groups[name]
		counts := count(dividers, vals)
		if normalize && len(vals) > 0 {
			n := float64(len(vals))
			for i := range counts {
				counts[i] = counts[i] * 100 / n
			}
		}
		h.Series = append(h.Series, Series{Name: name, Values: counts, Samples: len(vals)})
		h.Total += len(vals)
	}
	return h, nil
}

func bounds(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
