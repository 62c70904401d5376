// Package headers assigns raw spreadsheet column headers to canonical field identifiers.
package headers

import (
	"slices"
	"sort"
	"strings"

	"rolematch/internal/similarity"
)

// AcceptanceFloor is the similarity a header must exceed to claim a field.
const AcceptanceFloor = 0.5

// FieldSynonyms maps each canonical field identifier to its known header spellings.
type FieldSynonyms map[string][]string

// Merge returns a copy of f with the synonyms of other appended per field.
// Duplicate synonyms are dropped.
func (f FieldSynonyms) Merge(other FieldSynonyms) FieldSynonyms {
	out := make(FieldSynonyms, len(f)+len(other))
	for field, syns := range f {
		out[field] = slices.Clone(syns)
	}
	for field, syns := range other {
		for _, s := range syns {
			if !slices.Contains(out[field], s) {
				out[field] = append(out[field], s)
			}
		}
	}
	return out
}

// Assignment is one header claimed by one field.
type Assignment struct {
	Header  string  `json:"header"`
	Field   string  `json:"field"`
	Synonym string  `json:"synonym"`
	Score   float64 `json:"score"`
}

// Result is the outcome of one mapping run.
type Result struct {
	Assignments []Assignment
	Unmapped    []string
}

// Mapping returns the raw header to field identifier map.
func (r Result) Mapping() map[string]string {
	m := make(map[string]string, len(r.Assignments))
	for _, a := range r.Assignments {
		m[a.Header] = a.Field
	}
	return m
}

// FieldFor returns the field assigned to header, if any.
func (r Result) FieldFor(header string) (string, bool) {
	for _, a := range r.Assignments {
		if a.Header == header {
			return a.Field, true
		}
	}
	return "", false
}

// Mapper greedily assigns headers to fields.
type Mapper struct {
	scorer *similarity.Scorer
}

// NewMapper creates a Mapper using scorer.
func NewMapper(scorer *similarity.Scorer) *Mapper {
	return &Mapper{scorer: scorer}
}

// MapHeaders walks headers left to right. Each header takes the best-scoring
// field among those not yet claimed if the score exceeds AcceptanceFloor.
// Claimed fields leave the pool, so no field is assigned twice. The walk never
// backtracks: an early header can take a field a later header matches better.
// Blank headers and repeats of an earlier header are left unmapped.
func (m *Mapper) MapHeaders(rawHeaders []string, synonyms FieldSynonyms) Result {
	fields := make([]string, 0, len(synonyms))
	for field := range synonyms {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	claimed := make(map[string]bool, len(fields))
	seen := make(map[string]bool, len(rawHeaders))
	result := Result{}

	for _, header := range rawHeaders {
		if strings.TrimSpace(header) == "" || seen[header] {
			result.Unmapped = append(result.Unmapped, header)
			continue
		}
		seen[header] = true

		var best Assignment
		for _, field := range fields {
			if claimed[field] {
				continue
			}
			for _, syn := range synonyms[field] {
				if score := m.scorer.Score(header, syn); score > best.Score {
					best = Assignment{Header: header, Field: field, Synonym: syn, Score: score}
				}
			}
		}

		if best.Score > AcceptanceFloor {
			claimed[best.Field] = true
			result.Assignments = append(result.Assignments, best)
			continue
		}
		result.Unmapped = append(result.Unmapped, header)
	}

	return result
}
