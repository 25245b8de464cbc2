package search

import (
	"testing"

	"github.com/brandvoice/archivist/internal/models"
)

func corpus(sections ...*models.Section) []*models.Section {
	return sections
}

func sec(title string) *models.Section {
	return &models.Section{Title: title}
}

func TestRank_EmptyQueryNoFilterIsInactive(t *testing.T) {
	c := corpus(
		&models.Section{Title: "A", Tags: []string{"x"}},
		&models.Section{Title: "B", Content: "anything"},
	)

	results := Rank("", "", c)
	if len(results) != 0 {
		t.Fatalf("expected no results for inactive search, got %d", len(results))
	}

	// Whitespace-only queries are also inactive
	results = Rank("   ", "", c)
	if len(results) != 0 {
		t.Fatalf("expected no results for blank query, got %d", len(results))
	}
}

func TestRank_CategoryOnlyReturnsPriorityZeroInCorpusOrder(t *testing.T) {
	c := corpus(
		&models.Section{Title: "A", CategoryLabel: "【观点/理念】"},
		&models.Section{Title: "B", CategoryLabel: "【故事/案例】"},
		&models.Section{Title: "C", CategoryLabel: "【观点/理念】"},
	)

	results := Rank("", "【观点/理念】", c)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Section.Title != "A" || results[1].Section.Title != "C" {
		t.Errorf("corpus order not preserved: %q, %q", results[0].Section.Title, results[1].Section.Title)
	}
	for _, r := range results {
		if r.Priority != models.PriorityCategoryOnly {
			t.Errorf("category-only result has priority %d", r.Priority)
		}
		if r.MatchType != models.MatchTypeNone {
			t.Errorf("category-only result has match type %q", r.MatchType)
		}
	}
}

func TestRank_CategoryFilterAcceptsSlugAlias(t *testing.T) {
	c := corpus(&models.Section{Title: "A", CategoryLabel: "【方法/干货】"})

	if got := Rank("", "method", c); len(got) != 1 {
		t.Errorf("slug alias should match parsed variant, got %d results", len(got))
	}
	if got := Rank("", "story", c); len(got) != 0 {
		t.Errorf("wrong category should not match, got %d results", len(got))
	}
}

func TestRank_UnparsedCategoryReachableByLiteralLabel(t *testing.T) {
	c := corpus(&models.Section{Title: "A", CategoryLabel: "【随笔】"})

	if got := Rank("", "【随笔】", c); len(got) != 1 {
		t.Errorf("literal label should match, got %d results", len(got))
	}
}

func TestRank_TieredPriorities(t *testing.T) {
	// Each section hits a different tier for the same query.
	c := corpus(
		&models.Section{Title: "A", Tags: []string{"x"}},
		&models.Section{Title: "B", Quotes: []string{"hello x"}},
		&models.Section{Title: "C", Content: "x appears here"},
	)

	results := Rank("x", "", c)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	expected := []struct {
		title     string
		priority  int
		matchType models.MatchType
	}{
		{"A", models.PriorityTag, models.MatchTypeTag},
		{"B", models.PriorityQuote, models.MatchTypeQuote},
		{"C", models.PriorityContent, models.MatchTypeContent},
	}
	for i, want := range expected {
		got := results[i]
		if got.Section.Title != want.title || got.Priority != want.priority || got.MatchType != want.matchType {
			t.Errorf("result %d = {%s %d %s}, want {%s %d %s}",
				i, got.Section.Title, got.Priority, got.MatchType,
				want.title, want.priority, want.matchType)
		}
	}
}

func TestRank_FirstTierWinsPerSection(t *testing.T) {
	// A section matching both a quote and a tag is reported once, at the tag
	// tier.
	c := corpus(&models.Section{
		Title:  "A",
		Tags:   []string{"growth"},
		Quotes: []string{"growth mindset"},
	})

	results := Rank("growth", "", c)
	if len(results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(results))
	}
	if results[0].Priority != models.PriorityTag || results[0].MatchType != models.MatchTypeTag {
		t.Errorf("expected tag tier, got priority %d type %s", results[0].Priority, results[0].MatchType)
	}
}

func TestRank_NoMatchIsExcludedNotZero(t *testing.T) {
	c := corpus(
		&models.Section{Title: "A", Content: "nothing relevant"},
		&models.Section{Title: "B", Tags: []string{"topic"}},
	)

	results := Rank("topic", "", c)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Section.Title != "B" {
		t.Errorf("unexpected result %q", results[0].Section.Title)
	}
}

func TestRank_StableOrderWithinTier(t *testing.T) {
	c := corpus(
		&models.Section{Title: "first x"},
		&models.Section{Title: "quoted", Quotes: []string{"x said"}},
		&models.Section{Title: "second x"},
		&models.Section{Title: "tagged", Tags: []string{"x"}},
		&models.Section{Title: "third x"},
	)

	results := Rank("x", "", c)
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	order := make([]string, len(results))
	for i, r := range results {
		order[i] = r.Section.Title
	}
	want := []string{"tagged", "quoted", "first x", "second x", "third x"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	// Priorities must be non-increasing.
	for i := 1; i < len(results); i++ {
		if results[i].Priority > results[i-1].Priority {
			t.Errorf("priority increased at index %d", i)
		}
	}
}

func TestRank_CaseFoldingIsSymmetric(t *testing.T) {
	c := corpus(&models.Section{Title: "A", Tags: []string{"Brandeis"}})

	for _, q := range []string{"brandeis", "BRANDEIS", "Brandeis", "randei"} {
		if got := Rank(q, "", c); len(got) != 1 {
			t.Errorf("query %q should match tag, got %d results", q, len(got))
		}
	}
}

func TestRank_CJKQuery(t *testing.T) {
	c := corpus(&models.Section{
		Title:   "申请季关键词：赶",
		Content: "整个申请季都在赶时间",
		Tags:    []string{"申请季"},
	})

	results := Rank("申请季", "", c)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].MatchType != models.MatchTypeTag {
		t.Errorf("expected tag match, got %s", results[0].MatchType)
	}
}

func TestRank_QueryWithCategoryFilter(t *testing.T) {
	c := corpus(
		&models.Section{Title: "A", CategoryLabel: "【观点/理念】", Tags: []string{"x"}},
		&models.Section{Title: "B", CategoryLabel: "【故事/案例】", Tags: []string{"x"}},
	)

	results := Rank("x", "【观点/理念】", c)
	if len(results) != 1 || results[0].Section.Title != "A" {
		t.Fatalf("category filter not applied before scoring: %v results", len(results))
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	if got := Rank("anything", "", nil); len(got) != 0 {
		t.Errorf("empty corpus should yield no results")
	}
	if got := Rank("", "【观点/理念】", nil); len(got) != 0 {
		t.Errorf("empty corpus with filter should yield no results")
	}
}

func TestRank_SectionWithNoTextNeverMatches(t *testing.T) {
	// Empty fields are "no match", never a fault.
	c := corpus(&models.Section{})
	if got := Rank("x", "", c); len(got) != 0 {
		t.Errorf("blank section should be unreachable by text queries")
	}
}
