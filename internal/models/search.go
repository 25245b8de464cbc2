package models

// MatchType identifies which field tier produced a search hit
type MatchType string

const (
	MatchTypeTag     MatchType = "tag"
	MatchTypeQuote   MatchType = "quote"
	MatchTypeContent MatchType = "content"
	// MatchTypeNone marks category-only results (priority 0), which carry no
	// match tier.
	MatchTypeNone MatchType = ""
)

// Search priorities. Each section is scored at most once, at the highest tier
// it satisfies; a section matching nothing is excluded, not scored zero.
const (
	PriorityCategoryOnly = 0
	PriorityContent      = 1
	PriorityQuote        = 2
	PriorityTag          = 3
)

// SearchResult is an ephemeral scored hit. Never persisted.
type SearchResult struct {
	Section   *Section  `json:"section"`
	Priority  int       `json:"priority"`
	MatchType MatchType `json:"match_type,omitempty"`
}
