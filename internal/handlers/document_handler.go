package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
)

// DocumentHandler handles archive document HTTP requests
type DocumentHandler struct {
	documentService interfaces.DocumentService
	logger          arbor.ILogger
	maxImportSize   int64
}

func NewDocumentHandler(documentService interfaces.DocumentService, maxImportSize int64, logger arbor.ILogger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
		maxImportSize:   maxImportSize,
	}
}

// ListHandler handles GET /api/documents requests
func (h *DocumentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	docs, err := h.documentService.ListDocuments(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list documents")
		WriteError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	// Listing omits section bodies; callers fetch the full document by id.
	summaries := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, map[string]interface{}{
			"id":             doc.ID,
			"title":          doc.Title,
			"summary":        doc.Summary,
			"date":           doc.Date,
			"interviewee":    doc.IntervieweeNames(),
			"total_sections": doc.TotalSections,
			"updated_at":     doc.UpdatedAt,
		})
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(summaries),
		"documents": summaries,
	})
}

// GetHandler handles GET /api/documents/{id} requests
func (h *DocumentHandler) GetHandler(w http.ResponseWriter, r *http.Request, id string) {
	doc, err := h.documentService.GetDocument(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Document not found: %s", id))
		return
	}

	WriteJSON(w, http.StatusOK, doc)
}

// DeleteHandler handles DELETE /api/documents/{id} requests
func (h *DocumentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.documentService.DeleteDocument(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Str("document_id", id).Msg("Failed to delete document")
		WriteError(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	WriteSuccess(w, fmt.Sprintf("Document %s deleted", id))
}

// ImportHandler handles POST /api/documents/import requests. The body is one
// archive file; ?format= forces json/yaml, ?content_format=html converts
// section bodies on the way in.
func (h *DocumentHandler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, h.maxImportSize+1))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if int64(len(data)) > h.maxImportSize {
		WriteError(w, http.StatusRequestEntityTooLarge, "Archive exceeds the upload size limit")
		return
	}
	if len(data) == 0 {
		WriteError(w, http.StatusBadRequest, "Empty request body")
		return
	}

	opts := interfaces.ImportOptions{
		Format:      interfaces.ArchiveFormat(strings.ToLower(r.URL.Query().Get("format"))),
		ContentHTML: strings.EqualFold(r.URL.Query().Get("content_format"), "html"),
	}

	doc, err := h.documentService.ImportArchive(r.Context(), data, opts)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Archive import rejected")
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Import failed: %v", err))
		return
	}

	WriteJSON(w, http.StatusCreated, doc)
}

// ExportHandler handles GET /api/documents/export requests, serving the whole
// corpus as a downloadable backup file.
func (h *DocumentHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	backup, err := h.documentService.ExportBackup(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Backup export failed")
		WriteError(w, http.StatusInternalServerError, "Export failed")
		return
	}

	filename := fmt.Sprintf("archivist-backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(backup)
}

// RestoreHandler handles POST /api/documents/restore requests. The body is a
// backup payload; the stored corpus is replaced wholesale.
func (h *DocumentHandler) RestoreHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, h.maxImportSize+1))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if int64(len(data)) > h.maxImportSize {
		WriteError(w, http.StatusRequestEntityTooLarge, "Backup exceeds the upload size limit")
		return
	}

	count, err := h.documentService.RestoreBackup(r.Context(), data)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Backup restore rejected")
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Restore failed: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"documents": count,
	})
}

// StatsHandler handles GET /api/documents/stats requests
func (h *DocumentHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	stats, err := h.documentService.GetStats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to compute stats")
		WriteError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}

// QuotesHandler handles GET /api/quotes requests (inspiration wall)
func (h *DocumentHandler) QuotesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	quotes, err := h.documentService.AllQuotes(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to collect quotes")
		WriteError(w, http.StatusInternalServerError, "Failed to collect quotes")
		return
	}

	if quotes == nil {
		quotes = []models.Quote{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(quotes),
		"quotes": quotes,
	})
}
