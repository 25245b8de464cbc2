package search

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/common"
	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
)

// Service implements SearchService over the stored section corpus. The
// ranking itself is the pure Rank function; the service only loads the corpus
// and logs.
type Service struct {
	storage interfaces.DocumentStorage
	logger  arbor.ILogger
}

// Compile-time assertion
var _ interfaces.SearchService = (*Service)(nil)

// NewService creates a new search service
func NewService(storage interfaces.DocumentStorage, logger arbor.ILogger) *Service {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Search executes a ranked query over the whole corpus
func (s *Service) Search(ctx context.Context, query, categoryFilter string) ([]models.SearchResult, error) {
	corpus, err := s.storage.AllSections()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := Rank(query, categoryFilter, corpus)

	s.logger.Debug().
		Str("query", query).
		Str("category", categoryFilter).
		Int("corpus", len(corpus)).
		Int("results", len(results)).
		Msg("Search completed")

	return results, nil
}

// AllTags returns the distinct tag vocabulary in lexicographic order
func (s *Service) AllTags(ctx context.Context) ([]string, error) {
	corpus, err := s.storage.AllSections()
	if err != nil {
		return nil, fmt.Errorf("failed to collect tags: %w", err)
	}
	return CollectTags(corpus), nil
}

// SuggestTags returns vocabulary members containing the query
func (s *Service) SuggestTags(ctx context.Context, query string) ([]string, error) {
	tags, err := s.AllTags(ctx)
	if err != nil {
		return nil, err
	}
	return FilterTags(query, tags), nil
}
