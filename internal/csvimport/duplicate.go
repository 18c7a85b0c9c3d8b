package csvimport

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// SameText reports whether a and b are equal after trimming surrounding
// whitespace and folding case. Two blank strings are never the same, so a
// missing value cannot match another missing value.
func SameText(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return folder.String(a) == folder.String(b)
}

// FindDuplicate returns the first record in existing that same reports as a
// duplicate of candidate. Later matches are not reported.
func FindDuplicate[T any](candidate T, existing []T, same func(candidate, existing T) bool) (T, bool) {
	for _, e := range existing {
		if same(candidate, e) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// DetectConflicts splits parsed records into those with no existing
// duplicate and conflicts awaiting a resolution. Both keep input order.
// Every conflict starts as ResolutionSkip. existing is not modified.
func DetectConflicts[T any](records, existing []T, schema *Schema[T]) ([]T, []*Conflict[T]) {
	fresh := make([]T, 0, len(records))
	var conflicts []*Conflict[T]

	for _, r := range records {
		match, ok := FindDuplicate(r, existing, schema.Same)
		if !ok {
			fresh = append(fresh, r)
			continue
		}
		conflicts = append(conflicts, &Conflict[T]{
			Candidate:  r,
			Existing:   match,
			Resolution: ResolutionSkip,
		})
	}

	return fresh, conflicts
}
