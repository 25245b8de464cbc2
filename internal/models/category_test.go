package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label    string
		expected Category
	}{
		{"【观点/理念】", CategoryTheory},
		{"【故事/案例】", CategoryStory},
		{"【方法/干货】", CategoryMethod},
		{"【资讯/事实】", CategoryFact},
		{"观点", CategoryTheory},
		{"理念分享", CategoryTheory},
		{"案例", CategoryStory},
		{"干货合集", CategoryMethod},
		{"事实核查", CategoryFact},
		{"theory", CategoryTheory},
		{"Story", CategoryStory},
		{" method ", CategoryMethod},
		{"FACT", CategoryFact},
		{"【随笔】", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		if got := ParseCategory(tt.label); got != tt.expected {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.label, got, tt.expected)
		}
	}
}

func TestCategoryMappingIsTotal(t *testing.T) {
	// Every variant must produce a non-empty label and color, including the
	// fallback variant.
	for _, c := range []Category{CategoryOther, CategoryTheory, CategoryStory, CategoryMethod, CategoryFact} {
		if c.Label() == "" {
			t.Errorf("category %d has empty label", c)
		}
		if c.Color() == "" {
			t.Errorf("category %d has empty color", c)
		}
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := DisplayLabel("【观点/理念】"); got != "观点/理念" {
		t.Errorf("DisplayLabel = %q", got)
	}
	if got := DisplayLabel("plain"); got != "plain" {
		t.Errorf("DisplayLabel should pass through unbracketed labels, got %q", got)
	}
}

func TestSectionSummaryFallback(t *testing.T) {
	s := Section{Excerpt: "short", Insight: "long insight"}
	if s.Summary() != "short" {
		t.Errorf("expected excerpt preferred, got %q", s.Summary())
	}
	s.Excerpt = ""
	if s.Summary() != "long insight" {
		t.Errorf("expected insight fallback, got %q", s.Summary())
	}
}

func TestIntervieweeNames(t *testing.T) {
	d := Document{Interviewee: "王天行"}
	if d.IntervieweeNames() != "王天行" {
		t.Errorf("legacy field not used: %q", d.IntervieweeNames())
	}
	d.Interviewees = []string{"王天行", "李老师"}
	if d.IntervieweeNames() != "王天行, 李老师" {
		t.Errorf("multi-person join wrong: %q", d.IntervieweeNames())
	}
	empty := Document{}
	if empty.IntervieweeNames() != "Unknown" {
		t.Errorf("expected Unknown fallback, got %q", empty.IntervieweeNames())
	}
}

func TestReaderContentFallback(t *testing.T) {
	d := Document{
		Sections: []Section{
			{Title: "A", Content: "body a"},
			{Title: "B", Content: "body b"},
		},
	}
	want := "## A\n\nbody a\n\n## B\n\nbody b"
	if got := d.ReaderContent(); got != want {
		t.Errorf("ReaderContent fallback = %q, want %q", got, want)
	}

	d.FullCorrectedContent = "corrected"
	if d.ReaderContent() != "corrected" {
		t.Error("corrected content should take precedence")
	}
}
