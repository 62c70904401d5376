package models

import (
	"fmt"
	"strings"
)

// SeniorityLevel is one of the closed set of canonical seniority levels.
type SeniorityLevel string

// Seniority level constants
const (
	SeniorityJunior   SeniorityLevel = "Junior"
	SeniorityMid      SeniorityLevel = "Mid"
	SenioritySenior   SeniorityLevel = "Senior"
	SeniorityLead     SeniorityLevel = "Lead"
	SeniorityStaff    SeniorityLevel = "Staff"
	SeniorityManager  SeniorityLevel = "Manager"
	SeniorityDirector SeniorityLevel = "Director"
	SeniorityVP       SeniorityLevel = "VP"
	SeniorityCLevel   SeniorityLevel = "C-Level"
)

// SeniorityLevels lists every valid level from least to most senior.
var SeniorityLevels = []SeniorityLevel{
	SeniorityJunior,
	SeniorityMid,
	SenioritySenior,
	SeniorityLead,
	SeniorityStaff,
	SeniorityManager,
	SeniorityDirector,
	SeniorityVP,
	SeniorityCLevel,
}

// IsValid returns true if the level is part of the canonical set.
func (s SeniorityLevel) IsValid() bool {
	for _, l := range SeniorityLevels {
		if s == l {
			return true
		}
	}
	return false
}

// ParseSeniorityLevel resolves a level case-insensitively ("vp", "c-level", "SENIOR").
func ParseSeniorityLevel(s string) (SeniorityLevel, error) {
	s = strings.TrimSpace(s)
	for _, l := range SeniorityLevels {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown seniority level %q", s)
}

// SeniorityPtr parses an optional level. Empty input yields nil.
func SeniorityPtr(s string) (*SeniorityLevel, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	l, err := ParseSeniorityLevel(s)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
