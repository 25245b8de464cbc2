package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket route (navigation event feed)
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// API routes - Search and tag vocabulary
	mux.HandleFunc("/api/search", s.app.SearchHandler.SearchHandler)
	mux.HandleFunc("/api/tags", s.app.SearchHandler.TagsHandler)
	mux.HandleFunc("/api/tags/suggest", s.app.SearchHandler.SuggestTagsHandler)

	// API routes - Documents
	mux.HandleFunc("/api/documents/stats", s.app.DocumentHandler.StatsHandler)
	mux.HandleFunc("/api/documents/import", s.app.DocumentHandler.ImportHandler)
	mux.HandleFunc("/api/documents/export", s.app.DocumentHandler.ExportHandler)
	mux.HandleFunc("/api/documents/restore", s.app.DocumentHandler.RestoreHandler)
	mux.HandleFunc("/api/documents", s.app.DocumentHandler.ListHandler)
	mux.HandleFunc("/api/documents/", s.handleDocumentRoutes) // /{id} and /{id}/reader

	// API routes - Reading session
	mux.HandleFunc("/api/reader/goto", s.app.ReaderHandler.GotoHandler)
	mux.HandleFunc("/api/reader/select", s.app.ReaderHandler.SelectHandler)
	mux.HandleFunc("/api/reader/locate", s.app.ReaderHandler.LocateHandler)
	mux.HandleFunc("/api/reader/active", s.app.ReaderHandler.ActiveHandler)

	// API routes - Inspiration wall
	mux.HandleFunc("/api/quotes", s.app.DocumentHandler.QuotesHandler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	return mux
}

// handleDocumentRoutes dispatches /api/documents/{id} and
// /api/documents/{id}/reader by path shape and method.
func (s *Server) handleDocumentRoutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/documents/")
	if path == "" {
		http.NotFound(w, r)
		return
	}

	parts := strings.Split(path, "/")
	id := parts[0]

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			s.app.DocumentHandler.GetHandler(w, r, id)
		case http.MethodDelete:
			s.app.DocumentHandler.DeleteHandler(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case len(parts) == 2 && parts[1] == "reader":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.app.ReaderHandler.ViewHandler(w, r, id)
	default:
		http.NotFound(w, r)
	}
}
