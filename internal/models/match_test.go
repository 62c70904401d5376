package models

import (
	"encoding/json"
	"testing"
)

func TestMatchType_String(t *testing.T) {
	tests := []struct {
		matchType MatchType
		want      string
	}{
		{MatchNone, "none"},
		{MatchExact, "exact"},
		{MatchFuzzy, "fuzzy"},
		{MatchTaxonomy, "taxonomy"},
		{MatchType(42), "MatchType(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.matchType.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchType_JSON(t *testing.T) {
	r := MatchResult{OriginalTitle: "SDR", StandardizedTitle: "Sales Development Representative", Confidence: 80, MatchType: MatchTaxonomy}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded struct {
		MatchType string `json:"match_type"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.MatchType != "taxonomy" {
		t.Errorf("match_type = %q, want %q", decoded.MatchType, "taxonomy")
	}

	var back MatchResult
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.MatchType != MatchTaxonomy {
		t.Errorf("MatchType = %v, want %v", back.MatchType, MatchTaxonomy)
	}
}

func TestMatchType_UnmarshalInvalid(t *testing.T) {
	var m MatchType
	if err := m.UnmarshalText([]byte("partial")); err == nil {
		t.Error("UnmarshalText(partial) expected error")
	}
	if _, err := MatchType(9).MarshalText(); err == nil {
		t.Error("MarshalText(9) expected error")
	}
}

func TestNoMatch(t *testing.T) {
	r := NoMatch("Chief Vibes Officer")
	if r.StandardizedTitle != "Chief Vibes Officer" {
		t.Errorf("StandardizedTitle = %q, want pass-through", r.StandardizedTitle)
	}
	if r.Confidence != 0 || r.MatchType != MatchNone || r.IsMatched() {
		t.Errorf("NoMatch() = %+v, want zero confidence and MatchNone", r)
	}
	if r.SeniorityLevel != nil || r.RoleFamily != nil {
		t.Error("NoMatch() should leave seniority and role family nil")
	}
}
