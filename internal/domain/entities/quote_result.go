package entities

import "time"

type AvailabilityStatus string

const (
	AvailabilityInStock AvailabilityStatus = "in_stock"
	AvailabilityToOrder AvailabilityStatus = "to_order"
	AvailabilityAbsent  AvailabilityStatus = "absent"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case AvailabilityInStock, AvailabilityToOrder, AvailabilityAbsent:
		return true
	}
	return false
}

// QuoteResultLine is one bill-of-materials row produced by a calculation.
//
// Storage model (DynamoDB):
//   - PK: quote_id, one item per quote holding the whole set in "lines"
//
// The whole set for a quote is replaced on every recalculation. Availability
// fields are filled later by the warehouse.
type QuoteResultLine struct {
	ID                  string              `json:"id"`
	QuoteID             string              `json:"quote_id"`
	SKUID               int64               `json:"sku_id"`
	Qty                 int64               `json:"qty"`
	Note                *string             `json:"note,omitempty"`
	AvailabilityStatus  *AvailabilityStatus `json:"availability_status,omitempty"`
	AvailabilityComment *string             `json:"availability_comment,omitempty"`
}

// LineAvailability is the warehouse verdict for a single result line.
type LineAvailability struct {
	LineID  string
	Status  AvailabilityStatus
	Comment *string
}

// QuoteCalcRun is the append-only audit record of one calculation.
//
// Storage model (DynamoDB):
//   - PK: quote_id, SK: id (time ordered)
type QuoteCalcRun struct {
	ID             string    `json:"id"`
	QuoteID        string    `json:"quote_id"`
	CreatedAt      time.Time `json:"created_at"`
	MatchedRuleIDs []int64   `json:"matched_rule_ids"`
	DebugNote      *string   `json:"debug_note,omitempty"`
}

// CalculationCommit is everything a calculation writes, applied as one unit.
type CalculationCommit struct {
	QuoteID         string
	ExpectedVersion int64
	Lines           []QuoteResultLine
	Run             QuoteCalcRun
	Status          QuoteStatus
	UpdatedAt       time.Time
}

// StatusCommit is a status change plus its side writes, applied as one unit.
type StatusCommit struct {
	QuoteID         string
	ExpectedVersion int64
	Status          QuoteStatus
	Comment         *string
	Availability    []LineAvailability
	UpdatedAt       time.Time
}
