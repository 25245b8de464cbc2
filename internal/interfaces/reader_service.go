package interfaces

import (
	"context"
)

// SectionCard is one entry of the navigable card index rendered alongside the
// document body.
type SectionCard struct {
	AnchorID      string   `json:"anchor_id"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	CategoryLabel string   `json:"category_label"`
	CategoryColor string   `json:"category_color"`
	Tags          []string `json:"tags"`
	Position      int      `json:"position"` // 1-based
	Total         int      `json:"total"`
	Active        bool     `json:"active"`
}

// ReaderView is the rendered reading session payload: document body as HTML
// with heading anchors attached, plus the card index.
type ReaderView struct {
	DocumentID   string        `json:"document_id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Interviewee  string        `json:"interviewee"`
	BodyHTML     string        `json:"body_html"`
	Cards        []SectionCard `json:"cards"`
	ActiveAnchor string        `json:"active_anchor,omitempty"`
}

// NavigationUpdate reports the tracker state after a navigation event
type NavigationUpdate struct {
	DocumentID   string `json:"document_id"`
	ActiveAnchor string `json:"active_anchor,omitempty"`
	Scroll       bool   `json:"scroll"`
	Changed      bool   `json:"changed"`
}

// ReaderService owns reading sessions: rendering a document with heading
// anchors reconciled against its sections, and tracking the active section
// through explicit navigation events.
type ReaderService interface {
	// Open starts (or restarts) the reading session for a document and
	// returns the rendered view. Opening a different document resets the
	// tracker to idle.
	Open(ctx context.Context, documentID string) (*ReaderView, error)

	// GotoSection handles a cross-view "jump to source" request. When the
	// target document is not the open one the session switches to it first.
	GotoSection(ctx context.Context, documentID, anchorID string) (*NavigationUpdate, error)

	// SelectCard activates a card without scrolling the reading pane.
	SelectCard(ctx context.Context, anchorID string) (*NavigationUpdate, error)

	// LocateCard activates a card and requests a scroll to its anchor.
	LocateCard(ctx context.Context, anchorID string) (*NavigationUpdate, error)

	// Active reports the current session state.
	Active(ctx context.Context) (*NavigationUpdate, error)
}

// NavigationListener receives tracker transitions (websocket feed)
type NavigationListener interface {
	NavigationChanged(update NavigationUpdate)
}
