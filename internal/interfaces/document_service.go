package interfaces

import (
	"context"

	"github.com/brandvoice/archivist/internal/models"
)

// ArchiveFormat identifies the serialization of an uploaded archive file
type ArchiveFormat string

const (
	ArchiveFormatJSON ArchiveFormat = "json"
	ArchiveFormatYAML ArchiveFormat = "yaml"
)

// ImportOptions configures archive import behavior
type ImportOptions struct {
	Format ArchiveFormat

	// ContentHTML marks section bodies (and the corrected transcript) as HTML
	// to be converted to markdown on the way in.
	ContentHTML bool
}

// DocumentService handles archive document lifecycle: import, export,
// wholesale restore, deletion, and corpus statistics.
type DocumentService interface {
	// ImportArchive parses, validates and stores one archive file. Returns
	// the stored document with anchors assigned.
	ImportArchive(ctx context.Context, data []byte, opts ImportOptions) (*models.Document, error)

	// RestoreBackup replaces the whole corpus from a backup payload. The
	// payload may be a backup file, a bare archive array, or one archive.
	RestoreBackup(ctx context.Context, data []byte) (int, error)

	// ExportBackup serializes the whole corpus to the backup file shape.
	ExportBackup(ctx context.Context) (*models.ArchiveBackup, error)

	GetDocument(ctx context.Context, id string) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error

	// GetStats summarizes the corpus for the dashboard.
	GetStats(ctx context.Context) (*models.ArchiveStats, error)

	// AllQuotes flattens every verbatim quote with its owning section, in
	// corpus order (inspiration wall).
	AllQuotes(ctx context.Context) ([]models.Quote, error)
}
