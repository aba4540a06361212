package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlsDefaults(t *testing.T) {
	tbl := fixtureTable(t)
	cs := Controls(tbl, DefaultPreferences())

	assert.Equal(t, RangeControl{Min: 0, Max: 100, Default: 0}, cs.MinScore)
	assert.Len(t, cs.Categories, 9)
	assert.Equal(t, "aroma", cs.Category1)
	assert.Equal(t, "sweetness", cs.Category2)
	assert.Equal(t, []string{"Brazil", "Colombia", "United States (Hawaii)"}, cs.Countries)
	assert.Equal(t, "United States (Hawaii)", cs.Country1)
	assert.Equal(t, "Colombia", cs.Country2)
	assert.True(t, cs.Normalize)
}

func TestControlsFallback(t *testing.T) {
	tbl := buildTable(t,
		sample{"Kenya", "SL28", "8", "10", "88"},
		sample{"Ethiopia", "Heirloom", "8", "10", "89"},
		sample{"Rwanda", "Bourbon", "8", "10", "85"},
	)
	p := DefaultPreferences()
	p.Category1 = "bogus"
	cs := Controls(tbl, p)
	assert.Equal(t, "Ethiopia", cs.Country1)
	assert.Equal(t, "Kenya", cs.Country2)
	assert.Equal(t, "aroma", cs.Category1)

	one := buildTable(t, sample{"Kenya", "SL28", "8", "10", "88"})
	c1, c2 := DefaultCountries(one.Countries(), "Colombia", "Brazil")
	assert.Equal(t, "Kenya", c1)
	assert.Equal(t, "Kenya", c2)

	c1, c2 = DefaultCountries(nil, "Colombia", "Brazil")
	assert.Empty(t, c1)
	assert.Empty(t, c2)
}

func TestResolveCountry(t *testing.T) {
	choices := []string{"Brazil", "Colombia"}
	got, err := ResolveCountry(choices, "Colombia")
	require.NoError(t, err)
	assert.Equal(t, "Colombia", got)

	_, err = ResolveCountry(choices, "United States (Hawaii)")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestRenderTableIdentity(t *testing.T) {
	tbl := fixtureTable(t)
	v := RenderTable(tbl)
	assert.Equal(t, tbl.Columns, v.Columns)
	require.Len(t, v.Rows, tbl.Len())
	for i := range v.Rows {
		assert.Equal(t, tbl.Records[i].Cells, v.Rows[i])
	}

	md := v.Markdown(2)
	assert.True(t, strings.HasPrefix(md, "| country_of_origin | variety |"))
	assert.Contains(t, md, "(showing 2 of 7 rows)")
	assert.Contains(t, v.Markdown(0), "| Brazil | unknown |")
}
