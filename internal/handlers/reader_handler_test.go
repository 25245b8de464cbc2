package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvoice/archivist/internal/common"
	"github.com/brandvoice/archivist/internal/interfaces"
)

// stubReaderService drives the handler tests with a fixed session
type stubReaderService struct {
	view   *interfaces.ReaderView
	active string
	noOpen bool
}

func (s *stubReaderService) Open(ctx context.Context, documentID string) (*interfaces.ReaderView, error) {
	if s.view == nil || s.view.DocumentID != documentID {
		return nil, fmt.Errorf("document not found: %s", documentID)
	}
	return s.view, nil
}

func (s *stubReaderService) GotoSection(ctx context.Context, documentID, anchorID string) (*interfaces.NavigationUpdate, error) {
	if s.view == nil || s.view.DocumentID != documentID {
		return nil, fmt.Errorf("document not found: %s", documentID)
	}
	s.active = anchorID
	return &interfaces.NavigationUpdate{DocumentID: documentID, ActiveAnchor: anchorID, Scroll: true, Changed: true}, nil
}

func (s *stubReaderService) SelectCard(ctx context.Context, anchorID string) (*interfaces.NavigationUpdate, error) {
	if s.noOpen {
		return nil, fmt.Errorf("no reading session open")
	}
	s.active = anchorID
	return &interfaces.NavigationUpdate{ActiveAnchor: anchorID, Changed: true}, nil
}

func (s *stubReaderService) LocateCard(ctx context.Context, anchorID string) (*interfaces.NavigationUpdate, error) {
	if s.noOpen {
		return nil, fmt.Errorf("no reading session open")
	}
	s.active = anchorID
	return &interfaces.NavigationUpdate{ActiveAnchor: anchorID, Scroll: true, Changed: true}, nil
}

func (s *stubReaderService) Active(ctx context.Context) (*interfaces.NavigationUpdate, error) {
	if s.noOpen {
		return nil, fmt.Errorf("no reading session open")
	}
	return &interfaces.NavigationUpdate{ActiveAnchor: s.active}, nil
}

func testView() *interfaces.ReaderView {
	return &interfaces.ReaderView{
		DocumentID: "doc_a",
		Title:      "张老师访谈",
		BodyHTML:   `<h2 id="sec_001">申请季关键词：赶</h2>`,
		Cards: []interfaces.SectionCard{
			{AnchorID: "sec_001", Title: "申请季关键词：赶", Position: 1, Total: 1},
		},
	}
}

func TestReaderViewHandler(t *testing.T) {
	handler := NewReaderHandler(&stubReaderService{view: testView()}, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/documents/doc_a/reader", nil)
	w := httptest.NewRecorder()
	handler.ViewHandler(w, req, "doc_a")

	assert.Equal(t, http.StatusOK, w.Code)

	var view interfaces.ReaderView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "doc_a", view.DocumentID)
	require.Len(t, view.Cards, 1)
	assert.Equal(t, "sec_001", view.Cards[0].AnchorID)
	assert.Contains(t, view.BodyHTML, `id="sec_001"`)
}

func TestReaderViewHandlerUnknownDocument(t *testing.T) {
	handler := NewReaderHandler(&stubReaderService{view: testView()}, common.GetLogger())

	w := httptest.NewRecorder()
	handler.ViewHandler(w, httptest.NewRequest(http.MethodGet, "/api/documents/doc_x/reader", nil), "doc_x")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGotoHandler(t *testing.T) {
	svc := &stubReaderService{view: testView()}
	handler := NewReaderHandler(svc, common.GetLogger())

	body := `{"document_id": "doc_a", "anchor_id": "sec_001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reader/goto", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.GotoHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sec_001", svc.active)

	var update interfaces.NavigationUpdate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &update))
	assert.True(t, update.Scroll)
}

func TestGotoHandlerMissingDocument(t *testing.T) {
	handler := NewReaderHandler(&stubReaderService{view: testView()}, common.GetLogger())

	body := `{"anchor_id": "sec_001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reader/goto", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.GotoHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectHandler(t *testing.T) {
	svc := &stubReaderService{view: testView()}
	handler := NewReaderHandler(svc, common.GetLogger())

	body := `{"anchor_id": "sec_001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reader/select", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.SelectHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var update interfaces.NavigationUpdate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &update))
	assert.False(t, update.Scroll, "card selection never scrolls")
}

func TestTransitionMissingAnchor(t *testing.T) {
	handler := NewReaderHandler(&stubReaderService{view: testView()}, common.GetLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/reader/select", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	handler.SelectHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransitionNoSession(t *testing.T) {
	handler := NewReaderHandler(&stubReaderService{noOpen: true}, common.GetLogger())

	body := `{"anchor_id": "sec_001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reader/locate", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.LocateHandler(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestActiveHandler(t *testing.T) {
	svc := &stubReaderService{view: testView(), active: "sec_001"}
	handler := NewReaderHandler(svc, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/reader/active", nil)
	w := httptest.NewRecorder()
	handler.ActiveHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sec_001")
}
