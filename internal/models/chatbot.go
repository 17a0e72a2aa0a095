package models

import "time"

// Match types for logic rules.
const (
	MatchExact    = "exact"
	MatchContains = "contains"
	MatchRegex    = "regex"
)

// A single IF-pattern-THEN-response rule. Rules with higher
// priority are evaluated first; the first match wins.
type LogicRule struct {
	ID            int    `json:"id"`
	Pattern       string `json:"pattern"`
	MatchType     string `json:"match_type"`
	Response      string `json:"response"`
	SuggestedLink string `json:"suggested_link,omitempty"`
	Priority      int    `json:"priority"`
}

// A query no rule matched, kept for staff triage.
type UnansweredQuery struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"user_id,omitempty"`
	QueryText  string    `json:"query_text"`
	CreatedAt  time.Time `json:"created_at"`
	IsResolved bool      `json:"is_resolved"`
}
