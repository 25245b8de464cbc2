package reader

import (
	"sync"

	"github.com/brandvoice/archivist/internal/interfaces"
)

// Tracker holds the active-section state for a single reading session.
// The active anchor changes only through the explicit transitions below;
// there is no scroll-position inference.
type Tracker struct {
	mu         sync.Mutex
	documentID string
	anchors    map[string]struct{}
	active     string
}

// NewTracker starts an idle session for the given document. Valid anchors
// are fixed for the lifetime of the session.
func NewTracker(documentID string, anchorIDs []string) *Tracker {
	anchors := make(map[string]struct{}, len(anchorIDs))
	for _, id := range anchorIDs {
		anchors[id] = struct{}{}
	}
	return &Tracker{
		documentID: documentID,
		anchors:    anchors,
	}
}

// DocumentID returns the document this session tracks.
func (t *Tracker) DocumentID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.documentID
}

// Active returns the current active anchor, or the empty string when the
// session is idle.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Goto activates a section from an external navigation event, such as a
// search hit or an inspiration-wall quote. The reader scrolls to the target.
// An unknown anchor leaves the session unchanged.
func (t *Tracker) Goto(anchorID string) interfaces.NavigationUpdate {
	return t.transition(anchorID, true)
}

// Select activates a section from a card click in the index panel. The
// cards stay in place; no scroll happens.
func (t *Tracker) Select(anchorID string) interfaces.NavigationUpdate {
	return t.transition(anchorID, false)
}

// Locate re-centers the reader on a section that is already known to the
// session. It always scrolls, even when the section is already active.
func (t *Tracker) Locate(anchorID string) interfaces.NavigationUpdate {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.anchors[anchorID]; !ok {
		return t.snapshot(false, false)
	}

	changed := t.active != anchorID
	t.active = anchorID
	return t.snapshot(true, changed)
}

func (t *Tracker) transition(anchorID string, scroll bool) interfaces.NavigationUpdate {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.anchors[anchorID]; !ok {
		return t.snapshot(false, false)
	}
	if t.active == anchorID {
		return t.snapshot(scroll, false)
	}

	t.active = anchorID
	return t.snapshot(scroll, true)
}

// snapshot builds an update from the current state. Callers hold t.mu.
func (t *Tracker) snapshot(scroll, changed bool) interfaces.NavigationUpdate {
	return interfaces.NavigationUpdate{
		DocumentID:   t.documentID,
		ActiveAnchor: t.active,
		Scroll:       scroll,
		Changed:      changed,
	}
}
