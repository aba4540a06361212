package dataset

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Normalized names of the columns the views depend on.
const (
	ColTotalCupPoints = "total_cup_points"
	ColVariety        = "variety"
	ColCountry        = "country_of_origin"
)

// Sentinel replaces every absent cell in a cleaned table.
const Sentinel = "unknown"

var separatorRun = regexp.MustCompile(`[\s.]+`)

// excluded holds identification and administrative columns dropped during cleaning,
// expressed in normalized form. unnamed:_0 is the row-index column of the source export.
var excluded = map[string]struct{}{
	"unnamed:_0":            {},
	"owner":                 {},
	"lot_number":            {},
	"mill":                  {},
	"ico_number":            {},
	"altitude":              {},
	"producer":              {},
	"grading_date":          {},
	"owner_1":               {},
	"expiration":            {},
	"certification_body":    {},
	"certification_address": {},
	"certification_contact": {},
	"unit_of_measurement":   {},
	"altitude_low_meters":   {},
	"altitude_high_meters":  {},
	"altitude_mean_meters":  {},
}

// NormalizeColumnName lowercases name and collapses every run of whitespace or dots
// into a single underscore. It is idempotent.
func NormalizeColumnName(name string) string {
	return separatorRun.ReplaceAllString(strings.ToLower(name), "_")
}

// IsExcluded reports whether a normalized column name is dropped during cleaning.
func IsExcluded(name string) bool {
	_, ok := excluded[name]
	return ok
}

// ExcludedColumns returns the exclusion set in sorted order.
func ExcludedColumns() []string {
	out := make([]string, 0, len(excluded))
	for k := range excluded {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// headerName names a header cell, giving blank cells the positional name a
// dataframe export uses for its index column.
func headerName(raw string, pos int) string {
	if strings.TrimSpace(raw) == "" {
		return fmt.Sprintf("Unnamed: %d", pos)
	}
	return raw
}

// naTokens are cell values read as absent, in addition to blank cells.
var naTokens = map[string]struct{}{
	"NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"null": {}, "NULL": {}, "None": {}, "#N/A": {}, "#NA": {}, "<NA>": {},
	"-1.#IND": {}, "1.#IND": {}, "-1.#QNAN": {}, "1.#QNAN": {}, "#N/A N/A": {},
}

func isAbsent(v string) bool {
	s := strings.TrimSpace(v)
	if s == "" {
		return true
	}
	_, ok := naTokens[s]
	return ok
}
