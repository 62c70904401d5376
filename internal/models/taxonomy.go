package models

import "github.com/google/uuid"

// TaxonomyEntry is a curated canonical role with its known alternate spellings.
// Entries are read-only while matching.
type TaxonomyEntry struct {
	ID             uuid.UUID      `json:"id" yaml:"-"`
	RoleFamily     string         `json:"role_family" yaml:"role_family"`
	CanonicalTitle string         `json:"canonical_title" yaml:"canonical_title"`
	SeniorityLevel SeniorityLevel `json:"seniority_level" yaml:"seniority_level"`
	Aliases        []string       `json:"aliases" yaml:"aliases"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`
}
