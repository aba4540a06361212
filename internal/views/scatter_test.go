package views

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryScatter(t *testing.T) {
	tbl := fixtureTable(t)
	sc, err := RenderCategoryScatter(tbl, "aroma", "sweetness")
	require.NoError(t, err)

	assert.Equal(t, "aroma", sc.XLabel)
	assert.Equal(t, "sweetness", sc.YLabel)
	assert.Equal(t, "variety", sc.ColorBy)
	assert.Equal(t, 6, sc.Total)
	assert.Equal(t, 1, sc.Skipped)

	require.NotEmpty(t, sc.Series)
	assert.Equal(t, "Caturra", sc.Series[0].Name)
	assert.Equal(t, []Point{{X: 7.8, Y: 10}, {X: 8.0, Y: 9.33}}, sc.Series[0].Points)
}

func TestCategoryScatterSameCategory(t *testing.T) {
	tbl := fixtureTable(t)
	sc, err := RenderCategoryScatter(tbl, "flavor", "flavor")
	require.NoError(t, err)
	assert.Equal(t, tbl.Len(), sc.Total)
	for _, s := range sc.Series {
		for _, p := range s.Points {
			assert.Equal(t, p.X, p.Y)
		}
	}
}

func TestCategoryScatterInvalidCategory(t *testing.T) {
	tbl := fixtureTable(t)
	_, err := RenderCategoryScatter(tbl, "aroma", "invalid_category")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCategory))
	assert.Contains(t, err.Error(), "invalid_category")
	assert.Equal(t, CodeInvalidCategory, Code(err))

	_, err = RenderCategoryScatter(tbl, "Total.Cup.Points", "aroma")
	assert.True(t, errors.Is(err, ErrInvalidCategory))
}
