// Package match holds the field predicates the catalog filter layer is built
// from. All text predicates are case-insensitive and ignore surrounding
// whitespace, mirroring how the legacy data is actually queried by users.
package match

import "strings"

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Same reports case-insensitive, trimmed equality. Used for identifiers and
// status-like fields.
func Same(left, right string) bool {
	return normalize(left) == normalize(right)
}

// Contains reports case-insensitive substring containment. Used for free-text
// fields such as regions and applicant names.
func Contains(source, needle string) bool {
	return strings.Contains(normalize(source), normalize(needle))
}

// AnyContains reports whether any element of an array-valued field contains
// the needle. Used for tag filters.
func AnyContains(values []string, needle string) bool {
	for _, v := range values {
		if Contains(v, needle) {
			return true
		}
	}
	return false
}

// InRange reports whether value lies within the inclusive [min, max] bounds.
// A nil bound is unbounded on that side.
func InRange(value float64, min, max *float64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

// AliasSet maps a canonical filter value to the raw-language spellings it
// should match. Raw values are matched by substring against any alias.
type AliasSet map[string][]string

// DegreeAliases covers the academic-degree spellings that occur in the legacy
// staff tables in Russian and English.
var DegreeAliases = AliasSet{
	"doctor":    {"доктор", "doctor"},
	"candidate": {"кандидат", "candidate"},
	"phd":       {"phd", "ph.d"},
	"master":    {"магистр", "master"},
	"none":      {"нет", "none"},
}

// Match reports whether the raw field value satisfies the filter value. If the
// filter value has a registered alias group, any alias matching by substring
// passes; otherwise the filter value itself is used as a literal substring.
func (a AliasSet) Match(raw, filterValue string) bool {
	aliases, ok := a[normalize(filterValue)]
	if !ok {
		aliases = []string{filterValue}
	}
	for _, alias := range aliases {
		if Contains(raw, alias) {
			return true
		}
	}
	return false
}
