package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
)

// backupVersion is written into exported backup files
const backupVersion = "1.0"

// Service manages archive document lifecycle on top of document storage
type Service struct {
	storage  interfaces.DocumentStorage
	logger   arbor.ILogger
	validate *validator.Validate
}

var _ interfaces.DocumentService = (*Service)(nil)

func NewService(storage interfaces.DocumentStorage, logger arbor.ILogger) *Service {
	return &Service{
		storage:  storage,
		logger:   logger,
		validate: validator.New(),
	}
}

func (s *Service) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.storage.GetDocument(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("document not found: %s", id)
	}
	return doc, nil
}

func (s *Service) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	return s.storage.ListDocuments()
}

func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	if err := s.storage.DeleteDocument(id); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}

	s.logger.Info().Str("document_id", id).Msg("Document deleted")
	return nil
}

func (s *Service) GetStats(ctx context.Context) (*models.ArchiveStats, error) {
	return s.storage.GetStats()
}

// AllQuotes flattens every section's verbatim quotes in corpus order. The
// speaker is the owning document's interviewee.
func (s *Service) AllQuotes(ctx context.Context) ([]models.Quote, error) {
	docs, err := s.storage.ListDocuments()
	if err != nil {
		return nil, err
	}

	quotes := make([]models.Quote, 0)
	for _, doc := range docs {
		speaker := doc.IntervieweeNames()
		for i := range doc.Sections {
			sec := doc.Sections[i]
			for _, text := range sec.Quotes {
				quotes = append(quotes, models.Quote{
					Text:    text,
					Speaker: speaker,
					Source:  doc.Title,
					Section: sec,
				})
			}
		}
	}
	return quotes, nil
}

// ExportBackup serializes every stored document into the backup file shape.
func (s *Service) ExportBackup(ctx context.Context) (*models.ArchiveBackup, error) {
	docs, err := s.storage.ListDocuments()
	if err != nil {
		return nil, err
	}

	backup := &models.ArchiveBackup{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC(),
		Documents:  make([]models.KnowledgeArchive, 0, len(docs)),
	}
	for _, doc := range docs {
		head := *doc
		head.Sections = nil
		backup.Documents = append(backup.Documents, models.KnowledgeArchive{
			Meta: models.ArchiveMeta{
				Version:     backupVersion,
				GeneratedAt: backup.ExportedAt.Format(time.RFC3339),
				Tool:        "archivist",
			},
			Document: head,
			Sections: doc.Sections,
		})
	}

	s.logger.Info().Int("documents", len(docs)).Msg("Backup exported")
	return backup, nil
}
