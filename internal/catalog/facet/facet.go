// Package facet computes distinct-value lists and value histograms for the
// filter panels. Facets are best-effort: callers degrade to empty lists when a
// secondary lookup fails rather than failing the request.
package facet

import (
	"sort"

	"sciport/internal/domain"
)

// SortedUnique returns the distinct non-empty values in lexicographic order.
func SortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// SortedUniqueInts returns the distinct positive values in ascending order.
// Zero is the "unknown" marker in legacy year columns and is dropped.
func SortedUniqueInts(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// CountStrings builds a value→count histogram over the non-empty values,
// sorted lexicographically by value.
func CountStrings(values []string) []domain.StringCount {
	counter := make(map[string]int, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		counter[v]++
	}
	out := make([]domain.StringCount, 0, len(counter))
	for v, n := range counter {
		out = append(out, domain.StringCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// CountNumbers builds a value→count histogram over numeric values, sorted
// ascending by value. Non-positive values are the numeric "empty" (unknown
// legacy years) and are ignored, matching SortedUniqueInts.
func CountNumbers(values []float64) []domain.NumberCount {
	counter := make(map[float64]int, len(values))
	for _, v := range values {
		if v <= 0 {
			continue
		}
		counter[v]++
	}
	out := make([]domain.NumberCount, 0, len(counter))
	for v, n := range counter {
		out = append(out, domain.NumberCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
