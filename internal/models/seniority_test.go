package models

import "testing"

func TestParseSeniorityLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    SeniorityLevel
		wantErr bool
	}{
		{"Senior", SenioritySenior, false},
		{"senior", SenioritySenior, false},
		{"  vp ", SeniorityVP, false},
		{"c-level", SeniorityCLevel, false},
		{"MANAGER", SeniorityManager, false},
		{"Principal", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeniorityLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeniorityLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSeniorityLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeniorityPtr(t *testing.T) {
	got, err := SeniorityPtr("")
	if err != nil || got != nil {
		t.Errorf("SeniorityPtr(\"\") = %v, %v, want nil, nil", got, err)
	}

	got, err = SeniorityPtr("lead")
	if err != nil {
		t.Fatalf("SeniorityPtr(lead) error = %v", err)
	}
	if got == nil || *got != SeniorityLead {
		t.Errorf("SeniorityPtr(lead) = %v, want Lead", got)
	}
}

func TestSeniorityLevel_IsValid(t *testing.T) {
	for _, l := range SeniorityLevels {
		if !l.IsValid() {
			t.Errorf("%q.IsValid() = false", l)
		}
	}
	if SeniorityLevel("Intern").IsValid() {
		t.Error("Intern should not be valid")
	}
}
