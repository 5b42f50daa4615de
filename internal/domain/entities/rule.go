package entities

import (
	"encoding/json"
	"time"
)

// Rule maps a technique plus declarative conditions to SKU actions.
//
// Conditions and Actions are kept as the JSON documents an admin authored;
// they are interpreted by the calc package and never executed.
//
// Storage model (DynamoDB):
//   - PK: id (number, allocated from the counters table)
//   - GSI technique_id-index: technique_id
type Rule struct {
	ID          int64           `json:"id"`
	TechniqueID int64           `json:"technique_id"`
	Conditions  json.RawMessage `json:"conditions"`
	Actions     json.RawMessage `json:"actions"`
	Version     int             `json:"version"`
	ActiveFrom  *time.Time      `json:"active_from,omitempty"`
	ActiveTo    *time.Time      `json:"active_to,omitempty"`
	Active      bool            `json:"active"`
}

// ActiveOn reports whether the rule is enabled and its date window contains day.
// Only the calendar date of day is considered.
func (r Rule) ActiveOn(day time.Time) bool {
	if !r.Active {
		return false
	}
	d := DateOf(day)
	if r.ActiveFrom != nil && DateOf(*r.ActiveFrom).After(d) {
		return false
	}
	if r.ActiveTo != nil && DateOf(*r.ActiveTo).Before(d) {
		return false
	}
	return true
}

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
