package dataset

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Record is one cleaned row. Cells are aligned with Table.Columns and never hold an
// absent value; the typed fields are resolved from them once at load time.
type Record struct {
	TotalCupPoints float64
	Variety        string
	Country        string
	Cells          []string

	scores [numCategories]float64
}

// Score returns the record's value for c. ok is false when the cell was absent or
// not numeric in the source.
func (r *Record) Score(c Category) (v float64, ok bool) {
	i := c.index()
	if i < 0 {
		return 0, false
	}
	v = r.scores[i]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Table is the cleaned working dataset of a session. It is built once by Clean and
// must be treated as read-only afterwards.
type Table struct {
	// ID identifies this load of the dataset.
	ID string
	// Source is the base name of the file the table was read from.
	Source  string
	Columns []string
	Records []Record
	// RawRows counts data rows read before the score filter.
	RawRows  int
	Dropped  int
	Warnings []string

	countries []string
	index     map[string]int
}

// Len returns the number of cleaned records.
func (t *Table) Len() int { return len(t.Records) }

// ColumnIndex returns the position of a normalized column name, or -1.
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Countries returns the observed country_of_origin values, sorted.
func (t *Table) Countries() []string {
	out := make([]string, len(t.countries))
	copy(out, t.countries)
	return out
}

// HasCountry reports whether country occurs in the table.
func (t *Table) HasCountry(country string) bool {
	i := sort.SearchStrings(t.countries, country)
	return i < len(t.countries) && t.countries[i] == country
}

// Scores returns total_cup_points of every record in table order.
func (t *Table) Scores() []float64 {
	out := make([]float64, len(t.Records))
	for i := range t.Records {
		out[i] = t.Records[i].TotalCupPoints
	}
	return out
}

// ScoreRange returns the minimum and maximum total_cup_points. ok is false for an
// empty table.
func (t *Table) ScoreRange() (lo, hi float64, ok bool) {
	scores := t.Scores()
	lo, err := stats.Min(scores)
	if err != nil {
		return 0, 0, false
	}
	hi, err = stats.Max(scores)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

func (t *Table) finalize() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
	seen := map[string]struct{}{}
	for i := range t.Records {
		c := t.Records[i].Country
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		t.countries = append(t.countries, c)
	}
	sort.Strings(t.countries)
}
