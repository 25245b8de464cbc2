package reader

import (
	"context"
	"fmt"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/models"
)

// Service implements the reading session on top of document storage: it
// renders bodies with anchored headings and owns the active-section tracker.
type Service struct {
	storage interfaces.DocumentStorage
	logger  arbor.ILogger

	mu        sync.Mutex
	tracker   *Tracker
	listeners []interfaces.NavigationListener
}

var _ interfaces.ReaderService = (*Service)(nil)

func NewService(storage interfaces.DocumentStorage, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// AddListener registers a listener for tracker transitions. Listeners are
// notified only on updates where Changed or Scroll is set.
func (s *Service) AddListener(l interfaces.NavigationListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Open renders the document and starts a fresh idle session for it.
func (s *Service) Open(ctx context.Context, documentID string) (*interfaces.ReaderView, error) {
	view, tracker, err := s.buildView(ctx, documentID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tracker = tracker
	s.mu.Unlock()

	s.logger.Info().
		Str("document_id", documentID).
		Int("cards", len(view.Cards)).
		Msg("Reading session opened")

	return view, nil
}

// GotoSection jumps to a section from outside the reader. A request against
// a document other than the open one switches the session first.
func (s *Service) GotoSection(ctx context.Context, documentID, anchorID string) (*interfaces.NavigationUpdate, error) {
	s.mu.Lock()
	tracker := s.tracker
	s.mu.Unlock()

	if tracker == nil || tracker.DocumentID() != documentID {
		if _, err := s.Open(ctx, documentID); err != nil {
			return nil, err
		}
		s.mu.Lock()
		tracker = s.tracker
		s.mu.Unlock()
	}

	update := tracker.Goto(anchorID)
	s.notify(update)
	return &update, nil
}

// SelectCard activates a card in place; the reading pane does not move.
func (s *Service) SelectCard(ctx context.Context, anchorID string) (*interfaces.NavigationUpdate, error) {
	tracker, err := s.currentTracker()
	if err != nil {
		return nil, err
	}

	update := tracker.Select(anchorID)
	s.notify(update)
	return &update, nil
}

// LocateCard activates a card and scrolls the reading pane to it.
func (s *Service) LocateCard(ctx context.Context, anchorID string) (*interfaces.NavigationUpdate, error) {
	tracker, err := s.currentTracker()
	if err != nil {
		return nil, err
	}

	update := tracker.Locate(anchorID)
	s.notify(update)
	return &update, nil
}

// Active reports the tracker state without transitioning it.
func (s *Service) Active(ctx context.Context) (*interfaces.NavigationUpdate, error) {
	tracker, err := s.currentTracker()
	if err != nil {
		return nil, err
	}

	return &interfaces.NavigationUpdate{
		DocumentID:   tracker.DocumentID(),
		ActiveAnchor: tracker.Active(),
	}, nil
}

func (s *Service) currentTracker() (*Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tracker == nil {
		return nil, fmt.Errorf("no reading session open")
	}
	return s.tracker, nil
}

func (s *Service) notify(update interfaces.NavigationUpdate) {
	if !update.Changed && !update.Scroll {
		return
	}

	s.mu.Lock()
	listeners := make([]interfaces.NavigationListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.NavigationChanged(update)
	}
}

func (s *Service) buildView(ctx context.Context, documentID string) (*interfaces.ReaderView, *Tracker, error) {
	doc, err := s.storage.GetDocument(documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load document %s: %w", documentID, err)
	}
	if doc == nil {
		return nil, nil, fmt.Errorf("document not found: %s", documentID)
	}

	sections := AssignAnchors(doc.Sections)

	rendered, err := RenderDocument(doc, sections)
	if err != nil {
		return nil, nil, err
	}

	cards := make([]interfaces.SectionCard, 0, len(sections))
	anchorIDs := make([]string, 0, len(sections))
	for i, sec := range sections {
		anchorIDs = append(anchorIDs, sec.AnchorID)
		cards = append(cards, interfaces.SectionCard{
			AnchorID:      sec.AnchorID,
			Title:         sec.Title,
			Summary:       sec.Summary(),
			CategoryLabel: models.DisplayLabel(sec.CategoryLabel),
			CategoryColor: sec.Category().Color(),
			Tags:          sec.Tags,
			Position:      i + 1,
			Total:         len(sections),
		})
	}

	view := &interfaces.ReaderView{
		DocumentID:  doc.ID,
		Title:       doc.Title,
		Date:        doc.Date,
		Interviewee: doc.IntervieweeNames(),
		BodyHTML:    rendered.HTML,
		Cards:       cards,
	}

	return view, NewTracker(doc.ID, anchorIDs), nil
}
