// Package types provides type definitions for structured data used throughout the resume-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProcessedText represents a text document after normalization, tokenization, and keyword ranking
type ProcessedText struct {
	Original  string   `json:"original"`
	Cleaned   string   `json:"cleaned"`
	Tokens    []string `json:"tokens"`
	Stems     []string `json:"stems"`
	Sentences []string `json:"sentences"`
	Keywords  []string `json:"keywords"`
	Entities  Entities `json:"entities"`
}

// Entities holds recognized entities for a processed text.
// Skills come from the fixed vocabulary matcher; organizations, locations,
// and dates are best-effort output from an external extractor and carry
// no correctness guarantee.
type Entities struct {
	Skills        []string `json:"skills"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
}

// NewEntities returns an Entities value with all lists initialized empty,
// so JSON output always contains arrays rather than nulls.
func NewEntities() Entities {
	return Entities{
		Skills:        []string{},
		Organizations: []string{},
		Locations:     []string{},
		Dates:         []string{},
	}
}
