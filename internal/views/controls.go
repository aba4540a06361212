package views

import (
	"github.com/KaramelBytes/beanview/internal/dataset"
)

// Preferences are the initial control values requested by the shell.
type Preferences struct {
	Category1 string
	Category2 string
	Country1  string
	Country2  string
	Normalize bool
}

// DefaultPreferences mirrors the viewer's initial state.
func DefaultPreferences() Preferences {
	return Preferences{
		Category1: string(dataset.Aroma),
		Category2: string(dataset.Sweetness),
		Country1:  "United States (Hawaii)",
		Country2:  "Colombia",
		Normalize: true,
	}
}

// RangeControl is an integer slider.
type RangeControl struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// ControlSet lists the legal choices of every control and their initial values.
type ControlSet struct {
	MinScore   RangeControl `json:"min_score"`
	Categories []string     `json:"categories"`
	Category1  string       `json:"category_1"`
	Category2  string       `json:"category_2"`
	Countries  []string     `json:"countries"`
	Country1   string       `json:"country_1"`
	Country2   string       `json:"country_2"`
	Normalize  bool         `json:"normalize"`
}

// Controls resolves the control choices against t. Preferred countries missing from
// the data fall back to the first two available choices; invalid preferred categories
// fall back to aroma and sweetness.
func Controls(t *dataset.Table, p Preferences) ControlSet {
	cats := dataset.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	def := DefaultPreferences()
	cs := ControlSet{
		MinScore:   RangeControl{Min: MinScoreLower, Max: MinScoreUpper, Default: MinScoreLower},
		Categories: names,
		Category1:  pickCategory(p.Category1, def.Category1),
		Category2:  pickCategory(p.Category2, def.Category2),
		Countries:  t.Countries(),
		Normalize:  p.Normalize,
	}
	cs.Country1, cs.Country2 = DefaultCountries(cs.Countries, p.Country1, p.Country2)
	return cs
}

// ResolveCountry returns want if it is one of choices.
func ResolveCountry(choices []string, want string) (string, error) {
	for _, c := range choices {
		if c == want {
			return c, nil
		}
	}
	return "", &CountryError{Name: want}
}

// DefaultCountries picks the initial country pair. Each preferred country absent from
// choices is replaced by the first (country1) or second (country2) choice.
func DefaultCountries(choices []string, want1, want2 string) (string, string) {
	if len(choices) == 0 {
		return "", ""
	}
	c1, err := ResolveCountry(choices, want1)
	if err != nil {
		c1 = choices[0]
	}
	c2, err := ResolveCountry(choices, want2)
	if err != nil {
		c2 = choices[0]
		if len(choices) > 1 {
			c2 = choices[1]
		}
	}
	return c1, c2
}

func pickCategory(want, fallback string) string {
	if _, ok := dataset.ParseCategory(want); ok {
		return want
	}
	return fallback
}
