package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"rolematch/internal/models"
)

// Limits on caller-supplied input.
const (
	MaxTitleLength  = 200
	MaxHeaderLength = 200
	MaxHeaders      = 500
	MaxBatchSize    = 1000
	MaxTagLength    = 100

	MaxSynonymFields    = 100
	MaxSynonymsPerField = 50
	MaxFieldIDLength    = 100
)

// ValidateTitle checks a role title submitted for matching or feedback.
// Blank titles are allowed here; matching treats them as no match.
func ValidateTitle(title string) (bool, string) {
	if !utf8.ValidString(title) {
		return false, "Title must be valid UTF-8"
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return false, fmt.Sprintf("Title must be at most %d characters", MaxTitleLength)
	}
	if hasControl(title) {
		return false, "Title must not contain control characters"
	}
	return true, ""
}

// ValidateRequiredTitle is ValidateTitle that also rejects blank titles.
func ValidateRequiredTitle(title string) (bool, string) {
	if strings.TrimSpace(title) == "" {
		return false, "Title is required"
	}
	return ValidateTitle(title)
}

// ValidateTitles checks a batch of titles.
func ValidateTitles(titles []string) (bool, string) {
	if len(titles) > MaxBatchSize {
		return false, fmt.Sprintf("At most %d titles per batch", MaxBatchSize)
	}
	for _, t := range titles {
		if ok, msg := ValidateTitle(t); !ok {
			return false, msg
		}
	}
	return true, ""
}

// ValidateHeaders checks a table's header row.
func ValidateHeaders(headers []string) (bool, string) {
	if len(headers) == 0 {
		return false, "At least one header is required"
	}
	if len(headers) > MaxHeaders {
		return false, fmt.Sprintf("At most %d headers allowed", MaxHeaders)
	}
	for _, h := range headers {
		if !utf8.ValidString(h) {
			return false, "Headers must be valid UTF-8"
		}
		if utf8.RuneCountInString(h) > MaxHeaderLength {
			return false, fmt.Sprintf("Headers must be at most %d characters", MaxHeaderLength)
		}
	}
	return true, ""
}

// ValidateFieldSynonyms checks a caller-supplied synonym dictionary.
// A nil or empty dictionary is allowed.
func ValidateFieldSynonyms(synonyms map[string][]string) (bool, string) {
	if len(synonyms) > MaxSynonymFields {
		return false, fmt.Sprintf("At most %d synonym fields allowed", MaxSynonymFields)
	}
	for field, syns := range synonyms {
		if strings.TrimSpace(field) == "" {
			return false, "Synonym field identifiers must not be blank"
		}
		if !utf8.ValidString(field) || utf8.RuneCountInString(field) > MaxFieldIDLength {
			return false, fmt.Sprintf("Synonym field identifiers must be valid UTF-8 of at most %d characters", MaxFieldIDLength)
		}
		if len(syns) > MaxSynonymsPerField {
			return false, fmt.Sprintf("At most %d synonyms per field allowed", MaxSynonymsPerField)
		}
		for _, syn := range syns {
			if !utf8.ValidString(syn) {
				return false, "Synonyms must be valid UTF-8"
			}
			if utf8.RuneCountInString(syn) > MaxHeaderLength {
				return false, fmt.Sprintf("Synonyms must be at most %d characters", MaxHeaderLength)
			}
		}
	}
	return true, ""
}

// ValidateSeniority checks an optional seniority level. Empty is allowed.
func ValidateSeniority(s string) (bool, string) {
	if _, err := models.SeniorityPtr(s); err != nil {
		return false, "Seniority level must be one of: " + seniorityList()
	}
	return true, ""
}

// ValidateTags checks optional context tags.
func ValidateTags(tags models.ContextTags) (bool, string) {
	for _, v := range []string{tags.Industry, tags.Region, tags.CompanySize} {
		if utf8.RuneCountInString(v) > MaxTagLength {
			return false, fmt.Sprintf("Context tags must be at most %d characters", MaxTagLength)
		}
		if hasControl(v) {
			return false, "Context tags must not contain control characters"
		}
	}
	return true, ""
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

func seniorityList() string {
	names := make([]string, len(models.SeniorityLevels))
	for i, l := range models.SeniorityLevels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
