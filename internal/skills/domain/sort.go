package domain

import "strings"

// Sortable skill fields, by JSON name.
var SortFields = []string{"name", "category", "level", "proficiency", "yearsOfExperience", "createdAt"}

// Sort orders a listing after the fixed ascending order key.
type Sort struct {
	Field string
	Desc  bool
}

var DefaultSort = Sort{Field: "name"}

// ParseSort reads "field" or "-field". Empty input yields DefaultSort.
func ParseSort(s string) (Sort, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSort, true
	}
	out := Sort{Field: strings.TrimPrefix(s, "-"), Desc: strings.HasPrefix(s, "-")}
	for _, f := range SortFields {
		if f == out.Field {
			return out, true
		}
	}
	return Sort{}, false
}

// SortValues lists every accepted sort parameter, ascending and descending.
func SortValues() []string {
	out := make([]string, 0, 2*len(SortFields))
	for _, f := range SortFields {
		out = append(out, f, "-"+f)
	}
	return out
}
