package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ContextTags carries the optional labels observed alongside one confirmed mapping.
type ContextTags struct {
	Industry    string `json:"industry,omitempty"`
	Region      string `json:"region,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
}

// IsEmpty returns true if no tag is set.
func (t ContextTags) IsEmpty() bool {
	return t.Industry == "" && t.Region == "" && t.CompanySize == ""
}

// ContextTagSets are the deduplicated tags accumulated on a library entry.
type ContextTagSets struct {
	Industries   []string `json:"industries"`
	Regions      []string `json:"regions"`
	CompanySizes []string `json:"company_sizes"`
}

// Merge adds each non-empty tag to its set if not already present.
func (s *ContextTagSets) Merge(t ContextTags) {
	s.Industries = appendUnique(s.Industries, t.Industry)
	s.Regions = appendUnique(s.Regions, t.Region)
	s.CompanySizes = appendUnique(s.CompanySizes, t.CompanySize)
}

func appendUnique(set []string, v string) []string {
	if v == "" || slices.Contains(set, v) {
		return set
	}
	return append(set, v)
}

// LibraryEntry is a learned mapping from one previously confirmed literal title
// to its canonical values. Keyed by NormalizedOriginalTitle.
type LibraryEntry struct {
	ID                      uuid.UUID       `json:"id"`
	NormalizedOriginalTitle string          `json:"normalized_original_title"`
	StandardizedTitle       string          `json:"standardized_title"`
	SeniorityLevel          *SeniorityLevel `json:"seniority_level"`
	RoleFamily              *string         `json:"role_family"`
	Frequency               int64           `json:"frequency"`
	VerifiedCount           int64           `json:"verified_count"`
	ReportedIssueCount      int64           `json:"reported_issue_count"`
	Context                 ContextTagSets  `json:"context"`
	CreatedAt               time.Time       `json:"created_at"`
	LastSeenAt              time.Time       `json:"last_seen_at"`
}

// MappingInput is one confirmed mapping to be written into the library.
type MappingInput struct {
	NormalizedOriginalTitle string
	StandardizedTitle       string
	SeniorityLevel          *SeniorityLevel
	RoleFamily              *string
	Tags                    ContextTags
}

// LibraryStats summarises the library for metrics export.
type LibraryStats struct {
	Entries            int64 `json:"entries"`
	TotalFrequency     int64 `json:"total_frequency"`
	VerifiedCount      int64 `json:"verified_count"`
	ReportedIssueCount int64 `json:"reported_issue_count"`
}
