package dataset

// Category is one of the nine quality sub-score columns.
type Category string

const (
	Aroma      Category = "aroma"
	Flavor     Category = "flavor"
	Aftertaste Category = "aftertaste"
	Acidity    Category = "acidity"
	Body       Category = "body"
	Balance    Category = "balance"
	Uniformity Category = "uniformity"
	CleanCup   Category = "clean_cup"
	Sweetness  Category = "sweetness"
)

const numCategories = 9

var categories = [numCategories]Category{
	Aroma, Flavor, Aftertaste, Acidity, Body, Balance, Uniformity, CleanCup, Sweetness,
}

// Categories returns the sub-score columns in presentation order.
func Categories() []Category {
	out := make([]Category, numCategories)
	copy(out, categories[:])
	return out
}

// ParseCategory resolves a category by its normalized column name.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func (c Category) index() int {
	for i, v := range categories {
		if v == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string { return string(c) }
