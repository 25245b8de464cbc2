package reader

import (
	"fmt"
	"strings"

	"github.com/brandvoice/archivist/internal/models"
)

// NormalizeHeading folds heading and title text for comparison: lowercased,
// trimmed, internal whitespace runs collapsed to a single space. Applied
// identically to both sides of every comparison.
func NormalizeHeading(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Reconcile maps a free-text heading to its section record. Headings and
// section titles have no guaranteed lexical identity, so matching is exact
// equality after normalization or substring containment in either direction.
//
// Sections are scanned in corpus order and the first satisfying one wins.
// When two titles both satisfy containment for one heading only the earlier
// section is ever matched; the source data does not disambiguate and neither
// do we. No match returns nil, which is not an error: the heading simply
// renders without an anchor.
func Reconcile(headingText string, sections []models.Section) *models.Section {
	heading := NormalizeHeading(headingText)
	if heading == "" {
		return nil
	}

	for i := range sections {
		title := NormalizeHeading(sections[i].Title)
		if title == "" {
			continue
		}
		if heading == title || strings.Contains(heading, title) || strings.Contains(title, heading) {
			return &sections[i]
		}
	}
	return nil
}

// AssignAnchors gives every section entering a reading session an anchor id.
// Explicit ids are preserved; missing ones derive from the section's 1-based
// position, zero-padded to 3 digits (sec_001, sec_002, ...). The derivation
// is deterministic: the same ordered corpus always yields the same ids.
func AssignAnchors(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	for i := range out {
		if out[i].AnchorID == "" {
			out[i].AnchorID = fmt.Sprintf("sec_%03d", i+1)
		}
	}
	return out
}
