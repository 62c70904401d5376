package similarity

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestScore(t *testing.T) {
	s := Default()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Software Engineer", "Software Engineer", 1},
		{"case and whitespace", "  software   ENGINEER ", "Software Engineer", 1},
		{"accent folding", "Développeur", "developpeur", 1},
		{"empty vs empty", "", "", 1},
		{"whitespace vs empty", "   ", "", 1},
		{"empty vs non-empty", "", "engineer", 0},
		{"non-empty vs empty", "engineer", "", 0},
		{"one substitution", "sr. dev", "sr. dew", 1 - 1.0/7},
		{"one insertion", "email", "e-mail", 1 - 1.0/6},
		{"beyond max distance", "cfo", "software engineer", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScore_Symmetric(t *testing.T) {
	s := Default()
	pairs := [][2]string{
		{"Senior Developer", "Sr Developer"},
		{"Account Executive", "Account Exec"},
		{"Vertriebsleiter", "Vertriebsleitung"},
		{"", "x"},
	}
	for _, p := range pairs {
		if a, b := s.Score(p[0], p[1]), s.Score(p[1], p[0]); a != b {
			t.Errorf("Score(%q, %q) = %v but reversed = %v", p[0], p[1], a, b)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	s := Default()
	inputs := []string{"", "a", "ab", "Head of People", "Directeur Financier", "CTO", "日本語"}
	for _, a := range inputs {
		for _, b := range inputs {
			got := s.Score(a, b)
			if got < 0 || got > 1 {
				t.Errorf("Score(%q, %q) = %v, out of [0,1]", a, b, got)
			}
		}
	}
}

func TestScore_LongerInputsTolerateMoreEdits(t *testing.T) {
	s := New(0.25)

	// 3 edits on a 4-rune string exceed max(2, ceil(4*0.25)=1) = 2.
	if got := s.Score("abcd", "axyz"); got != 0 {
		t.Errorf("Score(abcd, axyz) = %v, want 0", got)
	}
	// 3 edits on a 16-rune string are within ceil(16*0.25) = 4.
	if got := s.Score("business analyst", "busines analyts"); got == 0 {
		t.Error("Score() = 0 for a long string within the search distance")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  Head   of\tSales ", "head of sales"},
		{"Ingeniería", "ingenieria"},
		{"GESCHÄFTSFÜHRER", "geschaftsfuhrer"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNew_InvalidRatioFallsBack(t *testing.T) {
	if s := New(0); s.MaxDistanceRatio != DefaultMaxDistanceRatio {
		t.Errorf("New(0).MaxDistanceRatio = %v, want %v", s.MaxDistanceRatio, DefaultMaxDistanceRatio)
	}
}
