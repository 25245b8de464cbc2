package reader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvoice/archivist/internal/common"
	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
)

type mockDocumentStorage struct {
	documents []*models.Document
}

func (m *mockDocumentStorage) SaveDocument(doc *models.Document) error {
	m.documents = append(m.documents, doc)
	return nil
}

func (m *mockDocumentStorage) GetDocument(id string) (*models.Document, error) {
	for _, doc := range m.documents {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentStorage) DeleteDocument(id string) error { return nil }

func (m *mockDocumentStorage) ListDocuments() ([]*models.Document, error) {
	return m.documents, nil
}

func (m *mockDocumentStorage) AllSections() ([]*models.Section, error) {
	var sections []*models.Section
	for _, doc := range m.documents {
		for i := range doc.Sections {
			sections = append(sections, &doc.Sections[i])
		}
	}
	return sections, nil
}

func (m *mockDocumentStorage) ReplaceAll(docs []*models.Document) error {
	m.documents = docs
	return nil
}

func (m *mockDocumentStorage) CountDocuments() (int, error) { return len(m.documents), nil }

func (m *mockDocumentStorage) GetStats() (*models.ArchiveStats, error) {
	return &models.ArchiveStats{TotalDocuments: len(m.documents)}, nil
}

func (m *mockDocumentStorage) ClearAll() error {
	m.documents = nil
	return nil
}

type recordingListener struct {
	updates []interfaces.NavigationUpdate
}

func (r *recordingListener) NavigationChanged(update interfaces.NavigationUpdate) {
	r.updates = append(r.updates, update)
}

func testDocuments() []*models.Document {
	return []*models.Document{
		{
			ID:                   "doc_a",
			Title:                "张老师访谈",
			Date:                 "2024-03-01",
			Interviewee:          "张老师",
			FullCorrectedContent: "## 申请季关键词：赶\n\n正文一。\n\n## 文书的底层逻辑\n\n正文二。",
			Sections: []models.Section{
				{Title: "申请季关键词：赶", CategoryLabel: "【观点/理念】", Tags: []string{"申请季"}},
				{Title: "文书的底层逻辑", CategoryLabel: "【方法/干货】", Insight: "文书要先想清楚写给谁看。"},
			},
		},
		{
			ID:                   "doc_b",
			Title:                "李老师访谈",
			Date:                 "2024-04-01",
			FullCorrectedContent: "## 选校策略\n\n正文。",
			Sections: []models.Section{
				{Title: "选校策略", CategoryLabel: "【方法/干货】"},
			},
		},
	}
}

func newTestService() *Service {
	storage := &mockDocumentStorage{documents: testDocuments()}
	return NewService(storage, common.GetLogger())
}

func TestServiceOpen(t *testing.T) {
	svc := newTestService()

	view, err := svc.Open(context.Background(), "doc_a")
	require.NoError(t, err)

	assert.Equal(t, "doc_a", view.DocumentID)
	assert.Equal(t, "张老师访谈", view.Title)
	assert.Equal(t, "张老师", view.Interviewee)
	assert.Empty(t, view.ActiveAnchor, "session opens idle")

	require.Len(t, view.Cards, 2)
	assert.Equal(t, "sec_001", view.Cards[0].AnchorID)
	assert.Equal(t, 1, view.Cards[0].Position)
	assert.Equal(t, 2, view.Cards[0].Total)
	assert.Equal(t, "观点/理念", view.Cards[0].CategoryLabel)
	assert.Equal(t, "文书要先想清楚写给谁看。", view.Cards[1].Summary)

	assert.Contains(t, view.BodyHTML, `id="sec_001"`)
	assert.Contains(t, view.BodyHTML, `id="sec_002"`)
}

func TestServiceOpenUnknownDocument(t *testing.T) {
	svc := newTestService()

	_, err := svc.Open(context.Background(), "doc_missing")
	assert.Error(t, err)
}

func TestServiceNavigationFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Open(ctx, "doc_a")
	require.NoError(t, err)

	update, err := svc.SelectCard(ctx, "sec_002")
	require.NoError(t, err)
	assert.Equal(t, "sec_002", update.ActiveAnchor)
	assert.False(t, update.Scroll)

	update, err = svc.LocateCard(ctx, "sec_002")
	require.NoError(t, err)
	assert.True(t, update.Scroll)
	assert.False(t, update.Changed)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "doc_a", active.DocumentID)
	assert.Equal(t, "sec_002", active.ActiveAnchor)
}

func TestServiceGotoSwitchesDocument(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Open(ctx, "doc_a")
	require.NoError(t, err)
	_, err = svc.SelectCard(ctx, "sec_002")
	require.NoError(t, err)

	update, err := svc.GotoSection(ctx, "doc_b", "sec_001")
	require.NoError(t, err)
	assert.Equal(t, "doc_b", update.DocumentID)
	assert.Equal(t, "sec_001", update.ActiveAnchor)
	assert.True(t, update.Scroll)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "doc_b", active.DocumentID)
}

func TestServiceGotoUnknownAnchor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Open(ctx, "doc_a")
	require.NoError(t, err)
	_, err = svc.GotoSection(ctx, "doc_a", "sec_001")
	require.NoError(t, err)

	update, err := svc.GotoSection(ctx, "doc_a", "sec_999")
	require.NoError(t, err)
	assert.Equal(t, "sec_001", update.ActiveAnchor, "unknown anchor leaves state alone")
	assert.False(t, update.Scroll)
	assert.False(t, update.Changed)
}

func TestServiceNoSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SelectCard(ctx, "sec_001")
	assert.Error(t, err)
	_, err = svc.Active(ctx)
	assert.Error(t, err)
}

func TestServiceNotifiesListeners(t *testing.T) {
	svc := newTestService()
	listener := &recordingListener{}
	svc.AddListener(listener)
	ctx := context.Background()

	_, err := svc.Open(ctx, "doc_a")
	require.NoError(t, err)

	_, err = svc.SelectCard(ctx, "sec_001")
	require.NoError(t, err)
	// No-op transition: unknown anchor produces no notification.
	_, err = svc.SelectCard(ctx, "sec_999")
	require.NoError(t, err)
	_, err = svc.LocateCard(ctx, "sec_001")
	require.NoError(t, err)

	require.Len(t, listener.updates, 2)
	assert.True(t, listener.updates[0].Changed)
	assert.True(t, listener.updates[1].Scroll)
}
