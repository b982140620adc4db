package legacy

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// String returns the first non-empty value among the named columns, trimmed.
// Absent and NULL columns read as "".
func (r Row) String(columns ...string) string {
	for _, col := range columns {
		if s := StringValue(r[col]); s != "" {
			return s
		}
	}
	return ""
}

// Number returns the first parseable numeric value among the named columns.
// Columns that are absent, NULL, or unparseable contribute 0; Number never
// fails.
func (r Row) Number(columns ...string) float64 {
	for _, col := range columns {
		v, ok := r[col]
		if !ok || v == nil {
			continue
		}
		if s := StringValue(v); s != "" {
			return ParseNumber(s)
		}
	}
	return 0
}

// FirstString returns the row's first non-empty column value, scanning columns
// in sorted name order so the result does not depend on map iteration. Used
// for single-column lookup files where the column name varies by locale.
func (r Row) FirstString() string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if s := StringValue(r[name]); s != "" {
			return s
		}
	}
	return ""
}

// StringValue renders an untyped cell as a trimmed string; nil → "".
func StringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// ParseNumber parses legacy numeric text. The legacy store mixes formats:
// embedded spaces as thousand separators and decimal commas both occur.
// Unparseable or non-finite input coerces to 0.
func ParseNumber(raw string) float64 {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// dateLayouts are tried in order when a date cell is not a bare year.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02.01.2006",
	"2006/01/02",
}

// ParseDate normalizes legacy date text to YYYY-MM-DD. A bare 4-digit year
// maps to January 1 of that year. Empty or unparseable input yields nil, never
// an error.
func ParseDate(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if len(trimmed) == 4 {
		if _, err := strconv.Atoi(trimmed); err == nil {
			iso := trimmed + "-01-01"
			return &iso
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}
