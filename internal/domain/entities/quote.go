package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (коммерческое предложение).
//
// Domain notes:
//   - draft and rework are the only editable and calculable states.
//   - approved is transient: accepting it advances the quote to warehouse_check.
//   - confirmed is terminal.

type QuoteStatus string

const (
	QuoteStatusDraft          QuoteStatus = "draft"
	QuoteStatusCalculated     QuoteStatus = "calculated"
	QuoteStatusApproved       QuoteStatus = "approved"
	QuoteStatusWarehouseCheck QuoteStatus = "warehouse_check"
	QuoteStatusRework         QuoteStatus = "rework"
	QuoteStatusConfirmed      QuoteStatus = "confirmed"
)

// MaxQuoteItems bounds the number of lines accepted per quote.
const MaxQuoteItems = 100

// Quote is the quote aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items and zones are embedded attributes
//   - version is bumped on every write and checked on the next one
type Quote struct {
	ID           string      `json:"id"`
	CreatedBy    string      `json:"created_by"`
	Status       QuoteStatus `json:"status"`
	CustomerName *string     `json:"customer_name,omitempty"`
	Comment      *string     `json:"comment,omitempty"`
	Zones        []string    `json:"zones"`
	Items        []QuoteItem `json:"items"`
	Version      int64       `json:"version"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// QuoteItem is one raw line of a quote: a technique with optional engine, year and params.
//
// ParamsJSON holds the canonical serialization of the flat parameter mapping
// (sorted keys, empty string when there are no parameters).
type QuoteItem struct {
	TechniqueID    int64   `json:"technique_id"`
	EngineOptionID *int64  `json:"engine_option_id,omitempty"`
	EngineText     *string `json:"engine_text,omitempty"`
	Year           *int    `json:"year,omitempty"`
	Qty            int     `json:"qty"`
	ParamsJSON     string  `json:"params_json,omitempty"`
}

// QuoteFilter narrows ListQuotes.
type QuoteFilter struct {
	Status   QuoteStatus
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}
