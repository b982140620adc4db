package domain

// StringCount is one facet value with the number of records carrying it.
type StringCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// NumberCount is the numeric twin of StringCount, used for year facets.
type NumberCount struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}
