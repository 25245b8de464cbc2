package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/interfaces"
)

// ReaderHandler exposes reading sessions over HTTP: the rendered view plus
// the explicit navigation transitions.
type ReaderHandler struct {
	readerService interfaces.ReaderService
	logger        arbor.ILogger
}

func NewReaderHandler(readerService interfaces.ReaderService, logger arbor.ILogger) *ReaderHandler {
	return &ReaderHandler{
		readerService: readerService,
		logger:        logger,
	}
}

// navigationRequest is the body of every tracker transition endpoint
type navigationRequest struct {
	DocumentID string `json:"document_id,omitempty"`
	AnchorID   string `json:"anchor_id"`
}

// ViewHandler handles GET /api/documents/{id}/reader requests
func (h *ReaderHandler) ViewHandler(w http.ResponseWriter, r *http.Request, id string) {
	view, err := h.readerService.Open(r.Context(), id)
	if err != nil {
		h.logger.Warn().Err(err).Str("document_id", id).Msg("Failed to open reading session")
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Cannot open document: %s", id))
		return
	}

	WriteJSON(w, http.StatusOK, view)
}

// GotoHandler handles POST /api/reader/goto requests: jump-to-source from a
// search result or quote. Requires document_id and anchor_id.
func (h *ReaderHandler) GotoHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decodeNavigation(w, r)
	if !ok {
		return
	}
	if req.DocumentID == "" {
		WriteError(w, http.StatusBadRequest, "document_id is required")
		return
	}

	update, err := h.readerService.GotoSection(r.Context(), req.DocumentID, req.AnchorID)
	if err != nil {
		h.logger.Warn().Err(err).Str("document_id", req.DocumentID).Msg("Goto failed")
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Cannot open document: %s", req.DocumentID))
		return
	}

	WriteJSON(w, http.StatusOK, update)
}

// SelectHandler handles POST /api/reader/select requests
func (h *ReaderHandler) SelectHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.readerService.SelectCard)
}

// LocateHandler handles POST /api/reader/locate requests
func (h *ReaderHandler) LocateHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.readerService.LocateCard)
}

// ActiveHandler handles GET /api/reader/active requests
func (h *ReaderHandler) ActiveHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	update, err := h.readerService.Active(r.Context())
	if err != nil {
		WriteError(w, http.StatusConflict, "No reading session open")
		return
	}

	WriteJSON(w, http.StatusOK, update)
}

func (h *ReaderHandler) transition(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, anchorID string) (*interfaces.NavigationUpdate, error)) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decodeNavigation(w, r)
	if !ok {
		return
	}

	update, err := op(r.Context(), req.AnchorID)
	if err != nil {
		WriteError(w, http.StatusConflict, "No reading session open")
		return
	}

	WriteJSON(w, http.StatusOK, update)
}

func (h *ReaderHandler) decodeNavigation(w http.ResponseWriter, r *http.Request) (*navigationRequest, bool) {
	var req navigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.AnchorID == "" {
		WriteError(w, http.StatusBadRequest, "anchor_id is required")
		return nil, false
	}
	return &req, true
}
