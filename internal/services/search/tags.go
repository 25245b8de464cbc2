package search

import (
	"sort"
	"strings"

	"github.com/brandvoice/archivist/internal/models"
)

// CollectTags derives the distinct tag vocabulary from the corpus in
// lexicographic order. Duplicate tags within a section are collapsed; the
// vocabulary is a pure derived view, recomputed per call.
func CollectTags(corpus []*models.Section) []string {
	seen := make(map[string]struct{})
	for _, section := range corpus {
		for _, tag := range section.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FilterTags returns the members of tags containing the query as a
// case-insensitive substring. Blank queries suggest nothing.
func FilterTags(query string, tags []string) []string {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return []string{}
	}

	matched := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), normalized) {
			matched = append(matched, tag)
		}
	}
	return matched
}
