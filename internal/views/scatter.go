package views

import (
	"github.com/KaramelBytes/beanview/internal/dataset"
)

// Point is one record plotted on two categories.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterSeries groups the points of one variety.
type ScatterSeries struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Scatter describes a category-vs-category scatter plot colored by variety.
type Scatter struct {
	Title   string          `json:"title"`
	XField  string          `json:"x_field"`
	YField  string          `json:"y_field"`
	ColorBy string          `json:"color_by"`
	XLabel  string          `json:"x_label"`
	YLabel  string          `json:"y_label"`
	Series  []ScatterSeries `json:"series"`
	Total   int             `json:"total"`
	// Skipped counts records whose value for either category was absent in the source.
	Skipped int `json:"skipped"`
}

// RenderCategoryScatter renders the category scatter.
func RenderCategoryScatter(t *dataset.Table, cat1, cat2 string) (*Scatter, error) {
	return defaultRenderer.CategoryScatter(t, cat1, cat2)
}

// CategoryScatter plots every record at (cat1, cat2), grouped by variety in order of
// first appearance. cat1 and cat2 may be equal.
func (r *Renderer) CategoryScatter(t *dataset.Table, cat1, cat2 string) (*Scatter, error) {
	x, ok := dataset.ParseCategory(cat1)
	if !ok {
		return nil, &CategoryError{Name: cat1}
	}
	y, ok := dataset.ParseCategory(cat2)
	if !ok {
		return nil, &CategoryError{Name: cat2}
	}

	sc := &Scatter{
		Title:   "Compare Individual Categories by Bean Variety",
		XField:  string(x),
		YField:  string(y),
		ColorBy: dataset.ColVariety,
		XLabel:  string(x),
		YLabel:  string(y),
		Series:  []ScatterSeries{},
	}
	pos := map[string]int{}
	for i := range t.Records {
		rec := &t.Records[i]
		xv, okx := rec.Score(x)
		yv, oky := rec.Score(y)
		if !okx || !oky {
			sc.Skipped++
			continue
		}
		j, seen := pos[rec.Variety]
		if !seen {
			j = len(sc.Series)
			pos[rec.Variety] = j
			sc.Series = append(sc.Series, ScatterSeries{Name: rec.Variety})
		}
		sc.Series[j].Points = append(sc.Series[j].Points, Point{X: xv, Y: yv})
		sc.Total++
	}
	return sc, nil
}
