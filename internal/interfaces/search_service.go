package interfaces

import (
	"context"

	"github.com/brandvoice/archivist/internal/models"
)

// SearchService answers free-text + category queries over the section corpus
// with tiered relevance (tag > quote > content). Results are ordered by
// descending priority; ties preserve corpus order.
type SearchService interface {
	// Search executes a ranked query. An empty query with no category filter
	// returns an empty list (search inactive, not "match everything"). An
	// empty query with a category filter returns that category's sections at
	// priority 0 in corpus order.
	Search(ctx context.Context, query, categoryFilter string) ([]models.SearchResult, error)

	// AllTags returns the distinct tag vocabulary in lexicographic order.
	AllTags(ctx context.Context) ([]string, error)

	// SuggestTags returns the tags containing the query as a substring,
	// case-insensitively. Blank queries yield nothing.
	SuggestTags(ctx context.Context, query string) ([]string, error)
}
