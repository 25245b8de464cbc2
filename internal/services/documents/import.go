package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"gopkg.in/yaml.v3"

	"github.com/brandvoice/archivist/internal/common"
	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
	"github.com/brandvoice/archivist/internal/services/reader"
)

// ImportArchive parses one archive file, validates it, and stores the
// resulting document with anchors assigned and section contexts rebuilt.
func (s *Service) ImportArchive(ctx context.Context, data []byte, opts interfaces.ImportOptions) (*models.Document, error) {
	archive, err := parseArchive(data, opts.Format)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(archive); err != nil {
		return nil, fmt.Errorf("archive validation failed: %w", err)
	}

	if opts.ContentHTML {
		if err := convertArchiveHTML(archive); err != nil {
			return nil, err
		}
	}

	doc := buildDocument(archive)
	if err := s.storage.SaveDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	s.logger.Info().
		Str("document_id", doc.ID).
		Str("title", doc.Title).
		Int("sections", len(doc.Sections)).
		Msg("Archive imported")

	return doc, nil
}

// RestoreBackup replaces the whole corpus from a backup payload. Accepts the
// backup file shape, a bare archive array, or a single archive.
func (s *Service) RestoreBackup(ctx context.Context, data []byte) (int, error) {
	archives, err := parseBackup(data)
	if err != nil {
		return 0, err
	}

	docs := make([]*models.Document, 0, len(archives))
	for i := range archives {
		archive := &archives[i]
		if err := s.validate.Struct(archive); err != nil {
			return 0, fmt.Errorf("archive %d validation failed: %w", i, err)
		}
		docs = append(docs, buildDocument(archive))
	}

	if err := s.storage.ReplaceAll(docs); err != nil {
		return 0, fmt.Errorf("failed to replace corpus: %w", err)
	}

	s.logger.Info().Int("documents", len(docs)).Msg("Corpus restored from backup")
	return len(docs), nil
}

// parseArchive decodes an uploaded archive. When no format is given the
// payload is sniffed: a leading brace means JSON, anything else YAML.
func parseArchive(data []byte, format interfaces.ArchiveFormat) (*models.KnowledgeArchive, error) {
	if format == "" {
		format = sniffFormat(data)
	}

	var archive models.KnowledgeArchive
	switch format {
	case interfaces.ArchiveFormatJSON:
		if err := json.Unmarshal(data, &archive); err != nil {
			return nil, fmt.Errorf("invalid archive JSON: %w", err)
		}
	case interfaces.ArchiveFormatYAML:
		if err := yaml.Unmarshal(data, &archive); err != nil {
			return nil, fmt.Errorf("invalid archive YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", format)
	}
	return &archive, nil
}

func sniffFormat(data []byte) interfaces.ArchiveFormat {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\uFEFF'
	})
	if strings.HasPrefix(trimmed, "{") {
		return interfaces.ArchiveFormatJSON
	}
	return interfaces.ArchiveFormatYAML
}

// parseBackup accepts the three shapes a restore payload can take. Backup
// files are always JSON.
func parseBackup(data []byte) ([]models.KnowledgeArchive, error) {
	var backup models.ArchiveBackup
	if err := json.Unmarshal(data, &backup); err == nil && backup.Documents != nil {
		return backup.Documents, nil
	}

	var archives []models.KnowledgeArchive
	if err := json.Unmarshal(data, &archives); err == nil {
		return archives, nil
	}

	var single models.KnowledgeArchive
	if err := json.Unmarshal(data, &single); err == nil && len(single.Sections) > 0 {
		return []models.KnowledgeArchive{single}, nil
	}

	return nil, fmt.Errorf("unrecognized backup payload")
}

// buildDocument assembles the stored document from a parsed archive: id when
// missing, anchors assigned, section back-references rebuilt.
func buildDocument(archive *models.KnowledgeArchive) *models.Document {
	doc := archive.Document
	if doc.ID == "" {
		doc.ID = common.NewDocumentID()
	}

	sections := reader.AssignAnchors(archive.Sections)
	interviewee := doc.IntervieweeNames()
	for i := range sections {
		sections[i].Context = models.SectionContext{
			DocumentID:          doc.ID,
			DocumentTitle:       doc.Title,
			DocumentSummary:     doc.Summary,
			DocumentDate:        doc.Date,
			DocumentInterviewee: interviewee,
			ChapterIndex:        i + 1,
			TotalChapters:       len(sections),
		}
	}

	doc.Sections = sections
	doc.TotalSections = len(sections)
	return &doc
}

// convertArchiveHTML rewrites HTML section bodies (and the corrected full
// transcript) to markdown in place.
func convertArchiveHTML(archive *models.KnowledgeArchive) error {
	converter := md.NewConverter("", true, nil)

	if archive.Document.FullCorrectedContent != "" {
		converted, err := converter.ConvertString(archive.Document.FullCorrectedContent)
		if err != nil {
			return fmt.Errorf("failed to convert transcript HTML: %w", err)
		}
		archive.Document.FullCorrectedContent = converted
	}

	for i := range archive.Sections {
		if archive.Sections[i].Content == "" {
			continue
		}
		converted, err := converter.ConvertString(archive.Sections[i].Content)
		if err != nil {
			return fmt.Errorf("failed to convert section %d HTML: %w", i, err)
		}
		archive.Sections[i].Content = converted
	}
	return nil
}
