package badger

import (
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
)

// DocumentStorage implements the DocumentStorage interface for Badger
type DocumentStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewDocumentStorage creates a new DocumentStorage instance
func NewDocumentStorage(db *BadgerDB, logger arbor.ILogger) interfaces.DocumentStorage {
	return &DocumentStorage{
		db:     db,
		logger: logger,
	}
}

func (s *DocumentStorage) SaveDocument(doc *models.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document ID is required")
	}

	now := time.Now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	if err := s.db.Store().Upsert(doc.ID, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (s *DocumentStorage) GetDocument(id string) (*models.Document, error) {
	var doc models.Document
	if err := s.db.Store().Get(id, &doc); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("document not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

func (s *DocumentStorage) DeleteDocument(id string) error {
	if err := s.db.Store().Delete(id, &models.Document{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// ListDocuments returns every document in stable store order. Badger key
// iteration order is not meaningful for display, so documents are sorted by
// authoring date then id; section order inside each document is preserved
// as stored.
func (s *DocumentStorage) ListDocuments() ([]*models.Document, error) {
	var docs []models.Document
	if err := s.db.Store().Find(&docs, nil); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Date != docs[j].Date {
			return docs[i].Date < docs[j].Date
		}
		return docs[i].ID < docs[j].ID
	})

	result := make([]*models.Document, len(docs))
	for i := range docs {
		result[i] = &docs[i]
	}
	return result, nil
}

// AllSections flattens the corpus into one ordered slice: documents in store
// order, sections in authoring order. This is the corpus the search and
// reconciliation engines consume.
func (s *DocumentStorage) AllSections() ([]*models.Section, error) {
	docs, err := s.ListDocuments()
	if err != nil {
		return nil, err
	}

	var sections []*models.Section
	for _, doc := range docs {
		for i := range doc.Sections {
			sections = append(sections, &doc.Sections[i])
		}
	}
	return sections, nil
}

// ReplaceAll swaps the whole corpus wholesale. Restore never patches in
// place: the existing set is cleared first, then the new set stored.
func (s *DocumentStorage) ReplaceAll(docs []*models.Document) error {
	if err := s.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear corpus before replace: %w", err)
	}

	for _, doc := range docs {
		if err := s.SaveDocument(doc); err != nil {
			return err
		}
	}

	s.logger.Info().Int("documents", len(docs)).Msg("Corpus replaced")
	return nil
}

func (s *DocumentStorage) CountDocuments() (int, error) {
	count, err := s.db.Store().Count(&models.Document{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return int(count), nil
}

func (s *DocumentStorage) GetStats() (*models.ArchiveStats, error) {
	docs, err := s.ListDocuments()
	if err != nil {
		return nil, err
	}

	stats := &models.ArchiveStats{
		TotalDocuments:     len(docs),
		SectionsByCategory: make(map[string]int),
		LastUpdated:        time.Now(),
	}

	tags := make(map[string]struct{})
	for _, doc := range docs {
		stats.TotalSections += len(doc.Sections)
		for i := range doc.Sections {
			sec := &doc.Sections[i]
			stats.TotalQuotes += len(sec.Quotes)
			stats.SectionsByCategory[sec.Category().Label()]++
			for _, tag := range sec.Tags {
				tags[tag] = struct{}{}
			}
		}
	}
	stats.DistinctTags = len(tags)

	return stats, nil
}

func (s *DocumentStorage) ClearAll() error {
	return s.db.Store().DeleteMatching(&models.Document{}, nil)
}
