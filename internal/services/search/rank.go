package search

import (
	"sort"
	"strings"

	"github.com/brandvoice/archivist/internal/models"
)

// NormalizeQuery folds a raw query for matching: trimmed and lowercased.
// The same folding is applied to corpus text so matching stays symmetric.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Rank evaluates a free-text + category query over an ordered section corpus.
//
// Tiering, per section, first hit wins:
//
//	priority 3  any tag contains the query        (match_type tag)
//	priority 2  any quote contains the query      (match_type quote)
//	priority 1  title/content/insight contains it (match_type content)
//
// A section matching none of the three is excluded, not scored zero. An empty
// query with no category filter means search is inactive: nothing is
// returned. An empty query with a category filter returns that category's
// sections at priority 0 with no match type.
//
// The result order is descending priority with corpus order preserved within
// each tier (stable sort).
func Rank(query, categoryFilter string, corpus []*models.Section) []models.SearchResult {
	normalized := NormalizeQuery(query)
	if normalized == "" && categoryFilter == "" {
		return []models.SearchResult{}
	}

	results := make([]models.SearchResult, 0, len(corpus))

	for _, section := range corpus {
		if !categoryMatches(section, categoryFilter) {
			continue
		}

		if normalized == "" {
			results = append(results, models.SearchResult{
				Section:  section,
				Priority: models.PriorityCategoryOnly,
			})
			continue
		}

		if priority, matchType, ok := score(section, normalized); ok {
			results = append(results, models.SearchResult{
				Section:   section,
				Priority:  priority,
				MatchType: matchType,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Priority > results[j].Priority
	})

	return results
}

// score evaluates the three tiers in strict priority order and stops at the
// first hit.
func score(section *models.Section, normalized string) (int, models.MatchType, bool) {
	for _, tag := range section.Tags {
		if strings.Contains(strings.ToLower(tag), normalized) {
			return models.PriorityTag, models.MatchTypeTag, true
		}
	}

	for _, quote := range section.Quotes {
		if strings.Contains(strings.ToLower(quote), normalized) {
			return models.PriorityQuote, models.MatchTypeQuote, true
		}
	}

	if strings.Contains(strings.ToLower(section.Title), normalized) ||
		strings.Contains(strings.ToLower(section.Content), normalized) ||
		strings.Contains(strings.ToLower(section.Insight), normalized) {
		return models.PriorityContent, models.MatchTypeContent, true
	}

	return 0, models.MatchTypeNone, false
}

// categoryMatches accepts the raw stored label verbatim, or any label/slug
// that parses to the same known variant. Labels that parse to Other are only
// reachable by their literal label.
func categoryMatches(section *models.Section, filter string) bool {
	if filter == "" {
		return true
	}
	if section.CategoryLabel == filter {
		return true
	}
	parsed := models.ParseCategory(filter)
	return parsed != models.CategoryOther && section.Category() == parsed
}
