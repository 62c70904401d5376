package models

import "fmt"

// MatchType identifies the cascade tier that produced a MatchResult.
type MatchType int

// Match types, in the order the cascade consults them.
const (
	MatchNone MatchType = iota
	MatchExact
	MatchFuzzy
	MatchTaxonomy
)

// String returns the wire name of the match type.
func (m MatchType) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	case MatchTaxonomy:
		return "taxonomy"
	}
	return fmt.Sprintf("MatchType(%d)", int(m))
}

// MarshalText encodes the match type by name.
func (m MatchType) MarshalText() ([]byte, error) {
	switch m {
	case MatchNone, MatchExact, MatchFuzzy, MatchTaxonomy:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("invalid match type %d", int(m))
}

// UnmarshalText decodes a match type name.
func (m *MatchType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*m = MatchNone
	case "exact":
		*m = MatchExact
	case "fuzzy":
		*m = MatchFuzzy
	case "taxonomy":
		*m = MatchTaxonomy
	default:
		return fmt.Errorf("invalid match type %q", string(b))
	}
	return nil
}

// MatchResult is the outcome of resolving one raw title.
type MatchResult struct {
	OriginalTitle     string          `json:"original_title"`
	StandardizedTitle string          `json:"standardized_title"`
	SeniorityLevel    *SeniorityLevel `json:"seniority_level"`
	RoleFamily        *string         `json:"role_family"`
	Confidence        int             `json:"confidence"`
	MatchType         MatchType       `json:"match_type"`
}

// NoMatch returns the pass-through result for a title no tier accepted.
func NoMatch(title string) MatchResult {
	return MatchResult{
		OriginalTitle:     title,
		StandardizedTitle: title,
		MatchType:         MatchNone,
	}
}

// IsMatched returns true if some tier accepted the title.
func (r MatchResult) IsMatched() bool {
	return r.MatchType != MatchNone
}
