package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
)

// SearchHandler handles retrieval and tag vocabulary HTTP requests
type SearchHandler struct {
	searchService interfaces.SearchService
	logger        arbor.ILogger
}

func NewSearchHandler(searchService interfaces.SearchService, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// SearchHandler handles GET /api/search?q=query&category=label requests
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	h.logger.Info().
		Str("query", query).
		Str("category", category).
		Msg("Search request received")

	results, err := h.searchService.Search(r.Context(), query, category)
	if err != nil {
		h.logger.Error().Err(err).Msg("Search failed")
		WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	if results == nil {
		results = []models.SearchResult{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query":    query,
		"category": category,
		"count":    len(results),
		"results":  results,
	})
}

// TagsHandler handles GET /api/tags requests
func (h *SearchHandler) TagsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tags, err := h.searchService.AllTags(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to collect tag vocabulary")
		WriteError(w, http.StatusInternalServerError, "Failed to collect tags")
		return
	}

	if tags == nil {
		tags = []string{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(tags),
		"tags":  tags,
	})
}

// SuggestTagsHandler handles GET /api/tags/suggest?q=fragment requests
func (h *SearchHandler) SuggestTagsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")

	tags, err := h.searchService.SuggestTags(r.Context(), query)
	if err != nil {
		h.logger.Error().Err(err).Msg("Tag suggestion failed")
		WriteError(w, http.StatusInternalServerError, "Tag suggestion failed")
		return
	}

	if tags == nil {
		tags = []string{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query": query,
		"tags":  tags,
	})
}
