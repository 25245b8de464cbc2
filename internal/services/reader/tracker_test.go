package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTracker() *Tracker {
	return NewTracker("doc_test", []string{"sec_001", "sec_002", "sec_003"})
}

func TestTrackerStartsIdle(t *testing.T) {
	tracker := newTestTracker()
	assert.Equal(t, "", tracker.Active())
}

func TestTrackerGoto(t *testing.T) {
	tracker := newTestTracker()

	update := tracker.Goto("sec_002")
	assert.Equal(t, "doc_test", update.DocumentID)
	assert.Equal(t, "sec_002", update.ActiveAnchor)
	assert.True(t, update.Scroll)
	assert.True(t, update.Changed)
	assert.Equal(t, "sec_002", tracker.Active())
}

func TestTrackerGotoUnknownAnchor(t *testing.T) {
	tracker := newTestTracker()
	tracker.Goto("sec_001")

	update := tracker.Goto("sec_999")
	assert.Equal(t, "sec_001", update.ActiveAnchor, "state must be unchanged")
	assert.False(t, update.Scroll)
	assert.False(t, update.Changed)
	assert.Equal(t, "sec_001", tracker.Active())
}

func TestTrackerGotoSameAnchor(t *testing.T) {
	tracker := newTestTracker()
	tracker.Goto("sec_001")

	update := tracker.Goto("sec_001")
	assert.True(t, update.Scroll, "repeat goto still scrolls")
	assert.False(t, update.Changed)
}

func TestTrackerSelectNeverScrolls(t *testing.T) {
	tracker := newTestTracker()

	update := tracker.Select("sec_003")
	assert.False(t, update.Scroll)
	assert.True(t, update.Changed)
	assert.Equal(t, "sec_003", tracker.Active())
}

func TestTrackerSelectUnknownAnchor(t *testing.T) {
	tracker := newTestTracker()

	update := tracker.Select("nope")
	assert.Equal(t, "", update.ActiveAnchor)
	assert.False(t, update.Changed)
}

func TestTrackerLocateAlwaysScrolls(t *testing.T) {
	tracker := newTestTracker()
	tracker.Select("sec_002")

	// Locating the already-active section still scrolls.
	update := tracker.Locate("sec_002")
	assert.True(t, update.Scroll)
	assert.False(t, update.Changed)

	update = tracker.Locate("sec_001")
	assert.True(t, update.Scroll)
	assert.True(t, update.Changed)
	assert.Equal(t, "sec_001", tracker.Active())
}

func TestTrackerLocateUnknownAnchor(t *testing.T) {
	tracker := newTestTracker()
	tracker.Goto("sec_001")

	update := tracker.Locate("sec_404")
	assert.Equal(t, "sec_001", update.ActiveAnchor)
	assert.False(t, update.Scroll)
	assert.False(t, update.Changed)
}
