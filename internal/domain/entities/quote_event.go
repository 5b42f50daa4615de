package entities

import "time"

type QuoteEventType string

const (
	QuoteEventCalculated    QuoteEventType = "quote.calculated"
	QuoteEventStatusChanged QuoteEventType = "quote.status_changed"
)

// QuoteEvent is published after a quote write has been committed.
type QuoteEvent struct {
	Type           QuoteEventType `json:"type"`
	QuoteID        string         `json:"quote_id"`
	Status         QuoteStatus    `json:"status"`
	PreviousStatus QuoteStatus    `json:"previous_status,omitempty"`
	ActorID        string         `json:"actor_id,omitempty"`
	MatchedRuleIDs []int64        `json:"matched_rule_ids,omitempty"`
	LineCount      int            `json:"line_count,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
