package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/beanview/internal/dataset"
)

var testHeader = []string{
	"Country.of.Origin", "Variety", "Aroma", "Flavor", "Aftertaste", "Acidity", "Body",
	"Balance", "Uniformity", "Clean.Cup", "Sweetness", "Total.Cup.Points",
}

type sample struct {
	country, variety string
	aroma, sweetness string
	score            string
}

func buildTable(t *testing.T, samples ...sample) *dataset.Table {
	t.Helper()
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{
			s.country, s.variety, s.aroma, "7.5", "7.5", "7.5", "7.5", "7.5", "10", "10", s.sweetness, s.score,
		})
	}
	tbl, err := dataset.Clean("test.csv", testHeader, rows)
	require.NoError(t, err)
	return tbl
}

func fixtureTable(t *testing.T) *dataset.Table {
	return buildTable(t,
		sample{"Colombia", "Caturra", "7.8", "10", "84.5"},
		sample{"Colombia", "Bourbon", "7.6", "10", "82.0"},
		sample{"Colombia", "Caturra", "8.0", "9.33", "86.25"},
		sample{"United States (Hawaii)", "Typica", "7.4", "10", "81.0"},
		sample{"United States (Hawaii)", "Typica", "", "10", "79.5"},
		sample{"Brazil", "Bourbon", "7.9", "10", "90.0"},
		sample{"Brazil", "", "7.2", "10", "75.17"},
	)
}
