package models

import (
	"slices"
	"testing"
)

func TestContextTagSets_Merge(t *testing.T) {
	var s ContextTagSets
	s.Merge(ContextTags{Industry: "Fintech", Region: "EU"})
	s.Merge(ContextTags{Industry: "Fintech", CompanySize: "51-200"})
	s.Merge(ContextTags{Industry: "SaaS"})
	s.Merge(ContextTags{})

	if want := []string{"Fintech", "SaaS"}; !slices.Equal(s.Industries, want) {
		t.Errorf("Industries = %v, want %v", s.Industries, want)
	}
	if want := []string{"EU"}; !slices.Equal(s.Regions, want) {
		t.Errorf("Regions = %v, want %v", s.Regions, want)
	}
	if want := []string{"51-200"}; !slices.Equal(s.CompanySizes, want) {
		t.Errorf("CompanySizes = %v, want %v", s.CompanySizes, want)
	}
}

func TestContextTags_IsEmpty(t *testing.T) {
	if !(ContextTags{}).IsEmpty() {
		t.Error("IsEmpty() = false for zero tags")
	}
	if (ContextTags{Region: "APAC"}).IsEmpty() {
		t.Error("IsEmpty() = true with region set")
	}
}
