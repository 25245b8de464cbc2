package interfaces

import (
	"github.com/brandvoice/archivist/internal/models"
)

// DocumentStorage - interface for archive document persistence. The core
// engines never touch the store directly; they receive ordered corpora loaded
// through this interface, so they remain pure and independently testable.
type DocumentStorage interface {
	// CRUD operations
	SaveDocument(doc *models.Document) error
	GetDocument(id string) (*models.Document, error)
	DeleteDocument(id string) error

	// List operations. ListDocuments returns documents in stable store order
	// (date, then id); AllSections flattens them into corpus order.
	ListDocuments() ([]*models.Document, error)
	AllSections() ([]*models.Section, error)

	// ReplaceAll swaps the whole corpus wholesale (backup restore). The core
	// never patches sections in place.
	ReplaceAll(docs []*models.Document) error

	// Stats operations
	CountDocuments() (int, error)
	GetStats() (*models.ArchiveStats, error)

	// Bulk operations
	ClearAll() error
}

// StorageManager - composite interface for all storage operations
type StorageManager interface {
	DocumentStorage() DocumentStorage
	Close() error
}
