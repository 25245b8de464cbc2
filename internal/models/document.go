package models

import (
	"fmt"
	"strings"
	"time"
)

// ArchiveMeta describes the tool that produced an archive file
type ArchiveMeta struct {
	Version     string `json:"version" yaml:"version" validate:"required"`
	GeneratedAt string `json:"generatedAt" yaml:"generatedAt"`
	Tool        string `json:"tool" yaml:"tool"`
}

// Document is the interview transcript metadata owning an ordered section list
type Document struct {
	// Identity
	ID string `json:"id" yaml:"id"`

	Title   string `json:"title" yaml:"title" validate:"required"`
	Summary string `json:"summary" yaml:"summary"`
	Date    string `json:"date" yaml:"date"` // authoring date, YYYY-MM-DD

	// Interviewee is the legacy single-person field; Interviewees supersedes it
	Interviewee  string   `json:"interviewee,omitempty" yaml:"interviewee,omitempty"`
	Interviewees []string `json:"interviewees,omitempty" yaml:"interviewees,omitempty"`

	TotalSections int `json:"totalSections" yaml:"totalSections"`

	// FullCorrectedContent is the optional hand-edited full transcript body.
	// When absent the reader falls back to concatenating section bodies.
	FullCorrectedContent string `json:"fullCorrectedContent,omitempty" yaml:"fullCorrectedContent,omitempty"`

	// Sections in authoring order. Order is significant: it defines default
	// anchor numbering and corpus order for search ties.
	Sections []Section `json:"sections" yaml:"sections"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// IntervieweeNames returns the display name(s) for the interviewed person(s),
// preferring the multi-person field over the legacy single field.
func (d *Document) IntervieweeNames() string {
	if len(d.Interviewees) > 0 {
		return strings.Join(d.Interviewees, ", ")
	}
	if d.Interviewee != "" {
		return d.Interviewee
	}
	return "Unknown"
}

// ReaderContent returns the markdown body the reader renders: the corrected
// full transcript when present, otherwise section titles and bodies joined.
func (d *Document) ReaderContent() string {
	if d.FullCorrectedContent != "" {
		return d.FullCorrectedContent
	}
	parts := make([]string, 0, len(d.Sections))
	for i := range d.Sections {
		s := &d.Sections[i]
		parts = append(parts, fmt.Sprintf("## %s\n\n%s", s.Title, s.Content))
	}
	return strings.Join(parts, "\n\n")
}

// SectionContext is the denormalized back-reference each section carries to
// its owning document. Present for display and cross-document search, never
// used for identity.
type SectionContext struct {
	DocumentID          string `json:"documentId" yaml:"documentId"`
	DocumentTitle       string `json:"documentTitle" yaml:"documentTitle"`
	DocumentSummary     string `json:"documentSummary" yaml:"documentSummary"`
	DocumentDate        string `json:"documentDate" yaml:"documentDate"`
	DocumentInterviewee string `json:"documentInterviewee" yaml:"documentInterviewee"`
	ChapterIndex        int    `json:"chapterIndex" yaml:"chapterIndex"` // 1-based
	TotalChapters       int    `json:"totalChapters" yaml:"totalChapters"`
}

// Section is the atomic retrievable and navigable unit of a document
type Section struct {
	// AnchorID locates the section inside the rendered document. Optional at
	// authoring time; derived from position when absent. Once assigned it is
	// stable for the lifetime of the document record.
	AnchorID string `json:"section_id,omitempty" yaml:"section_id,omitempty"`

	Title   string `json:"title" yaml:"title"`
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Content string `json:"content" yaml:"content"`

	KeyPoints []string `json:"keyPoints,omitempty" yaml:"keyPoints,omitempty"`

	// CategoryLabel is the raw display-bracketed label from the authoring
	// tool, e.g. "【观点/理念】". Parse with ParseCategory for dispatch.
	CategoryLabel string `json:"category" yaml:"category"`

	Tags    []string `json:"tags" yaml:"tags"`
	Quotes  []string `json:"quotes" yaml:"quotes"`
	Insight string   `json:"insight" yaml:"insight" validate:"required"`

	Context SectionContext `json:"context" yaml:"context"`
}

// Summary returns the card preview text: excerpt when authored, insight
// otherwise (insight is the mandatory fallback).
func (s *Section) Summary() string {
	if s.Excerpt != "" {
		return s.Excerpt
	}
	return s.Insight
}

// Category parses the raw label into its tagged variant
func (s *Section) Category() Category {
	return ParseCategory(s.CategoryLabel)
}

// KnowledgeArchive is the import/export file shape produced by the authoring
// tool: one document plus its annotated sections.
type KnowledgeArchive struct {
	Meta     ArchiveMeta `json:"meta" yaml:"meta" validate:"required"`
	Document Document    `json:"document" yaml:"document" validate:"required"`
	Sections []Section   `json:"sections" yaml:"sections" validate:"required,min=1,dive"`
}

// ArchiveBackup is the whole-corpus backup file: every document in store
// order. Restore replaces the corpus wholesale.
type ArchiveBackup struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
	Documents  []KnowledgeArchive `json:"documents"`
}

// ArchiveStats summarizes the corpus for the dashboard view
type ArchiveStats struct {
	TotalDocuments      int            `json:"total_documents"`
	TotalSections       int            `json:"total_sections"`
	TotalQuotes         int            `json:"total_quotes"`
	DistinctTags        int            `json:"distinct_tags"`
	SectionsByCategory  map[string]int `json:"sections_by_category"`
	LastUpdated         time.Time      `json:"last_updated"`
}

// Quote is one verbatim line with its owning section, flattened for the
// inspiration wall listing.
type Quote struct {
	Text    string  `json:"text"`
	Speaker string  `json:"speaker"`
	Source  string  `json:"source"`
	Section Section `json:"section"`
}
