package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/common"
	"github.com/brandvoice/archivist/internal/interfaces"
)

// APIHandler serves system endpoints: health and version
type APIHandler struct {
	documentService interfaces.DocumentService
	logger          arbor.ILogger
	startedAt       time.Time
}

func NewAPIHandler(documentService interfaces.DocumentService, logger arbor.ILogger) *APIHandler {
	return &APIHandler{
		documentService: documentService,
		logger:          logger,
		startedAt:       time.Now(),
	}
}

// HealthHandler handles GET /api/health requests
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	status := "healthy"
	code := http.StatusOK

	docs, err := h.documentService.ListDocuments(r.Context())
	if err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	WriteJSON(w, code, map[string]interface{}{
		"status":    status,
		"documents": len(docs),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// VersionHandler handles GET /api/version requests
func (h *APIHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.Build,
		"commit":  common.GitCommit,
	})
}
