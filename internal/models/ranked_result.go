package models

// RankedResult is one candidate entry from the ranking API's response.
// Constructed per request, never persisted.
type RankedResult struct {
	Name       string         `json:"name"`
	Popularity float64        `json:"popularity"`
	Function   ResultFunction `json:"function"`
	// Stacks is the number of stacks the tool appears in (optional).
	Stacks int64 `json:"stacks,omitempty"`
	// OneLiner is a representative one-line testimonial (optional).
	OneLiner string `json:"one_liner,omitempty"`
}

// ResultFunction names the tool category a result belongs to.
type ResultFunction struct {
	Name string `json:"name"`
}
