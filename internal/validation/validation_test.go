package validation

import (
	"fmt"
	"strings"
	"testing"

	"rolematch/internal/models"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"plain", "Senior Developer", true},
		{"accented", "Développeur Senior", true},
		{"empty allowed", "", true},
		{"max length", strings.Repeat("a", MaxTitleLength), true},
		{"too long", strings.Repeat("a", MaxTitleLength+1), false},
		{"multibyte at limit", strings.Repeat("é", MaxTitleLength), true},
		{"newline", "Senior\nDeveloper", false},
		{"tab", "Senior\tDeveloper", false},
		{"invalid utf8", "Sr \xff Dev", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateTitle(tt.title)
			if valid != tt.valid {
				t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, valid, tt.valid)
			}
		})
	}
}

func TestValidateRequiredTitle(t *testing.T) {
	if valid, msg := ValidateRequiredTitle("   "); valid || msg != "Title is required" {
		t.Errorf("ValidateRequiredTitle(blank) = %v, %q", valid, msg)
	}
	if valid, _ := ValidateRequiredTitle("CTO"); !valid {
		t.Error("ValidateRequiredTitle(CTO) = false, want true")
	}
}

func TestValidateTitles(t *testing.T) {
	if valid, _ := ValidateTitles([]string{"a", "", "b"}); !valid {
		t.Error("ValidateTitles(small batch) = false, want true")
	}
	if valid, _ := ValidateTitles(make([]string, MaxBatchSize+1)); valid {
		t.Error("ValidateTitles(oversized batch) = true, want false")
	}
	if valid, _ := ValidateTitles([]string{"ok", "bad\x00"}); valid {
		t.Error("ValidateTitles(control char) = true, want false")
	}
}

func TestValidateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		valid   bool
	}{
		{"typical", []string{"Name", "Email", "Job Title"}, true},
		{"blank header allowed", []string{"Name", ""}, true},
		{"none", nil, false},
		{"too many", make([]string, MaxHeaders+1), false},
		{"too long", []string{strings.Repeat("h", MaxHeaderLength+1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateHeaders(tt.headers)
			if valid != tt.valid {
				t.Errorf("ValidateHeaders() = %v, want %v", valid, tt.valid)
			}
		})
	}
}

func TestValidateFieldSynonyms(t *testing.T) {
	manyFields := make(map[string][]string, MaxSynonymFields+1)
	for i := 0; i <= MaxSynonymFields; i++ {
		manyFields[fmt.Sprintf("field_%d", i)] = []string{"x"}
	}

	tests := []struct {
		name     string
		synonyms map[string][]string
		valid    bool
	}{
		{"nil", nil, true},
		{"typical", map[string][]string{"job_title": {"funktion", "rolle"}}, true},
		{"synonyms at limit", map[string][]string{"job_title": make([]string, MaxSynonymsPerField)}, true},
		{"too many fields", manyFields, false},
		{"too many synonyms", map[string][]string{"job_title": make([]string, MaxSynonymsPerField+1)}, false},
		{"synonym too long", map[string][]string{"job_title": {strings.Repeat("a", MaxHeaderLength+1)}}, false},
		{"field id too long", map[string][]string{strings.Repeat("f", MaxFieldIDLength+1): {"x"}}, false},
		{"blank field id", map[string][]string{" ": {"x"}}, false},
		{"invalid utf8 synonym", map[string][]string{"job_title": {"roÿle"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateFieldSynonyms(tt.synonyms)
			if valid != tt.valid {
				t.Errorf("ValidateFieldSynonyms() = %v, want %v", valid, tt.valid)
			}
		})
	}
}

func TestValidateSeniority(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"", true},
		{"Senior", true},
		{"c-level", true},
		{"Principal", false},
	}

	for _, tt := range tests {
		valid, msg := ValidateSeniority(tt.input)
		if valid != tt.valid {
			t.Errorf("ValidateSeniority(%q) = %v, want %v", tt.input, valid, tt.valid)
		}
		if !valid && !strings.Contains(msg, "Junior") {
			t.Errorf("ValidateSeniority(%q) message %q should list levels", tt.input, msg)
		}
	}
}

func TestValidateTags(t *testing.T) {
	if valid, _ := ValidateTags(models.ContextTags{Industry: "Fintech", Region: "EU"}); !valid {
		t.Error("ValidateTags(typical) = false, want true")
	}
	if valid, _ := ValidateTags(models.ContextTags{Region: strings.Repeat("r", MaxTagLength+1)}); valid {
		t.Error("ValidateTags(long region) = true, want false")
	}
}
